package cli

import (
	"fmt"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/tasklist"

	"github.com/spf13/cobra"
)

// taskListOutput is the payload every tasks subcommand prints: the filter in
// effect plus the matching slice of the latest fetch.
type taskListOutput struct {
	Filter string       `json:"filter"`
	Tasks  []model.Task `json:"tasks"`
}

func (o taskListOutput) Plain() string {
	if len(o.Tasks) == 0 {
		return "no tasks (" + o.Filter + ")"
	}
	var b strings.Builder
	for i, t := range o.Tasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%s %s  %s", box, t.ID, t.Title)
	}
	return b.String()
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and mutate tasks on the remote service",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var filterName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch all tasks and print the filtered view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := model.ParseFilter(filterName)
			if !ok {
				return fmt.Errorf("unknown filter: %s (want all|pending|completed)", filterName)
			}
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("fetch failed")
				return errBackend(err)
			}
			ctrl.SetFilter(filter)
			return writeOut(cmd, app, taskListOutput{Filter: filter.String(), Tasks: ctrl.Visible()})
		},
	}
	cmd.Flags().StringVar(&filterName, "filter", "all", "Filter (all|pending|completed)")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a pending task",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				// Whitespace-only titles are dropped locally, not sent.
				return nil
			}
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			if err := ctrl.Create(cmd.Context(), title); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("create failed")
				return errBackend(err)
			}
			return writeOut(cmd, app, taskListOutput{Filter: model.FilterAll.String(), Tasks: ctrl.Tasks()})
		},
	}
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			// Populate the snapshot first so the toggle can re-send the
			// current title.
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("fetch failed")
				return errBackend(err)
			}
			if err := ctrl.ToggleComplete(cmd.Context(), model.TaskID(args[0])); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("toggle failed")
				return errBackend(err)
			}
			return writeOut(cmd, app, taskListOutput{Filter: model.FilterAll.String(), Tasks: ctrl.Tasks()})
		},
	}
}

func newTasksEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title...>",
		Short: "Replace a task's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			// Populate the snapshot first so the edit preserves the current
			// completed flag.
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("fetch failed")
				return errBackend(err)
			}
			title := strings.Join(args[1:], " ")
			if err := ctrl.Rename(cmd.Context(), model.TaskID(args[0]), title); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("rename failed")
				return errBackend(err)
			}
			return writeOut(cmd, app, taskListOutput{Filter: model.FilterAll.String(), Tasks: ctrl.Tasks()})
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			if err := ctrl.Remove(cmd.Context(), model.TaskID(args[0])); err != nil {
				log := app.logger()
				log.Error().Err(err).Msg("delete failed")
				return errBackend(err)
			}
			return writeOut(cmd, app, taskListOutput{Filter: model.FilterAll.String(), Tasks: ctrl.Tasks()})
		},
	}
}

// controller builds a task-list controller over the configured service.
func (app *App) controller() (*tasklist.Controller, error) {
	svc, err := app.service()
	if err != nil {
		return nil, err
	}
	return tasklist.New(svc), nil
}
