package main

import (
	"fmt"
	"time"

	"github.com/jmorales/pizarra/kanban"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks on the board",
}

// task create
var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task in the todo column",
	Long: `Create a new task in the todo column.

Without --due, the due date follows the priority: alta is due in 12 hours,
media in 24, normal in 48, and baja has no due date.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskCreate,
}

var (
	taskCreatePriority string
	taskCreateDue      string
)

// task edit
var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's title, priority, or due date",
	Long: `Edit a task's title, priority, or due date.

Changing the priority without also passing --due recomputes the due date from
the new priority's default window (and clears it for baja).`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskEdit,
}

var (
	taskEditTitle    string
	taskEditPriority string
	taskEditDue      string
)

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDelete,
}

// task move
var taskMoveCmd = &cobra.Command{
	Use:   "move <id> <column>",
	Short: "Move a task to another column (todo, inprogress, done)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskMove,
}

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list [column]",
	Short: "List tasks, most urgent first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTaskList,
}

var taskListJSON bool

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskCreateCmd, taskEditCmd, taskDeleteCmd, taskMoveCmd, taskShowCmd, taskListCmd)

	// task create flags
	taskCreateCmd.Flags().StringVarP(&taskCreatePriority, "priority", "p", "", "Priority (alta, media, normal, baja)")
	taskCreateCmd.Flags().StringVar(&taskCreateDue, "due", "", "Due date (2006-01-02T15:04, local time)")

	// task edit flags
	taskEditCmd.Flags().StringVar(&taskEditTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVarP(&taskEditPriority, "priority", "p", "", "New priority (alta, media, normal, baja)")
	taskEditCmd.Flags().StringVar(&taskEditDue, "due", "", "New due date (2006-01-02T15:04, empty clears)")

	// task show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// task list flags
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	title := args[0]
	if err := kanban.ValidateTitle(title); err != nil {
		return err
	}

	store, cfg, err := openStoreWithConfig()
	if err != nil {
		return err
	}

	priority := defaultPriority(cfg)
	if cmd.Flags().Changed("priority") {
		priority = kanban.Priority(taskCreatePriority)
	}
	if err := kanban.ValidatePriority(priority); err != nil {
		return err
	}

	created := store.Create(title, priority, taskCreateDue)
	if created == nil {
		return kanban.ErrEmptyTitle
	}

	highlight := taskHighlighter(store)
	fmt.Printf("Created task %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	task, col, err := resolveTask(store, args[0])
	if err != nil {
		return err
	}

	newTitle := ""
	if cmd.Flags().Changed("title") {
		newTitle = taskEditTitle
		if err := kanban.ValidateTitle(newTitle); err != nil {
			return err
		}
	}

	newPriority := task.Priority
	if cmd.Flags().Changed("priority") {
		newPriority = kanban.Priority(taskEditPriority)
		if err := kanban.ValidatePriority(newPriority); err != nil {
			return err
		}
	}

	// An untouched --due passes the current value through verbatim, which
	// lets a priority change recompute the due date from its new default.
	dueInput := kanban.FormatDueInput(task.DueAt)
	if cmd.Flags().Changed("due") {
		dueInput = taskEditDue
	}

	updated := store.Edit(task.ID, col, newTitle, newPriority, dueInput)
	if updated == nil {
		return kanban.ErrTaskNotFound
	}

	highlight := taskHighlighter(store)
	fmt.Printf("Updated task %s: %s\n", highlight(updated.ID), updated.Title)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, ref := range args {
		task, col, err := resolveTask(store, ref)
		if err != nil {
			return err
		}
		title := task.Title
		if !store.Delete(task.ID, col) {
			return kanban.ErrTaskNotFound
		}
		fmt.Printf("Deleted task %s: %s\n", task.ID, title)
	}
	return nil
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	to := kanban.Column(args[1])
	if err := kanban.ValidateColumn(to); err != nil {
		return err
	}

	task, from, err := resolveTask(store, args[0])
	if err != nil {
		return err
	}
	if from == to {
		fmt.Printf("Task %s is already in %s\n", task.ID, to)
		return nil
	}
	if !store.Move(task.ID, from, to) {
		return kanban.ErrTaskNotFound
	}

	highlight := taskHighlighter(store)
	fmt.Printf("Moved task %s to %s: %s\n", highlight(task.ID), to, task.Title)
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	tasks := make([]*kanban.Task, 0, len(args))
	columns := make([]kanban.Column, 0, len(args))
	for _, ref := range args {
		task, col, err := resolveTask(store, ref)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
		columns = append(columns, col)
	}

	if taskShowJSON {
		return encodeJSONToStdout(tasks)
	}

	now := time.Now()
	for i, task := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(task, columns[i], now)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	columns := kanban.ValidColumns()
	if len(args) > 0 {
		col := kanban.Column(args[0])
		if err := kanban.ValidateColumn(col); err != nil {
			return err
		}
		columns = []kanban.Column{col}
	}

	now := time.Now()
	if taskListJSON {
		listing := make(map[kanban.Column][]*kanban.Task, len(columns))
		for _, col := range columns {
			listing[col] = store.OrderedTasks(col, now)
		}
		return encodeJSONToStdout(listing)
	}

	prefixLengths := store.IDIndex().PrefixLengths()
	for i, col := range columns {
		if i > 0 {
			fmt.Println()
		}
		tasks := store.OrderedTasks(col, now)
		fmt.Printf("%s (%s)\n", col.Title(), taskCount(len(tasks)))
		if len(tasks) == 0 {
			continue
		}
		fmt.Print(formatTaskTable(tasks, prefixLengths, now))
	}
	return nil
}

// resolveTask resolves an ID or unique ID prefix to a task and its column.
func resolveTask(store *kanban.Store, ref string) (*kanban.Task, kanban.Column, error) {
	id, err := store.IDIndex().Resolve(ref)
	if err != nil {
		return nil, "", err
	}

	task, col, ok := store.Find(id)
	if !ok {
		return nil, "", kanban.ErrTaskNotFound
	}
	return task, col, nil
}

func taskCount(n int) string {
	if n == 1 {
		return "1 tarea"
	}
	return fmt.Sprintf("%d tareas", n)
}
