// Package app wires the menu loop and record operations over the store.
package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kina524/sql-data-analyzy-app/internal/logging"
	"github.com/kina524/sql-data-analyzy-app/internal/models"
	"github.com/kina524/sql-data-analyzy-app/internal/prompt"
	"github.com/kina524/sql-data-analyzy-app/internal/report"
	"github.com/kina524/sql-data-analyzy-app/internal/scatter"
	"github.com/kina524/sql-data-analyzy-app/internal/storage/sqlite"
)

// App drives the interactive session. Every operation opens its own store
// connection and releases it before returning; nothing is held across prompts.
type App struct {
	DBPath  string
	PlotDir string
	Prompt  *prompt.Prompter
	Out     io.Writer
}

func New(dbPath string, in io.Reader, out io.Writer) *App {
	return &App{
		DBPath:  dbPath,
		PlotDir: ".",
		Prompt:  prompt.New(in, out),
		Out:     out,
	}
}

func (a *App) openStore() (*sqlite.Store, error) {
	return sqlite.Open(a.DBPath)
}

// readAll returns the full record set. Read failures are reported to the
// console and yield an empty set; they never propagate.
func (a *App) readAll(ctx context.Context) []models.User {
	st, err := a.openStore()
	if err != nil {
		fmt.Fprintf(a.Out, "Error reading database: %v\n", err)
		return nil
	}
	defer st.Close()

	users, err := st.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.Out, "Error reading database: %v\n", err)
		return nil
	}
	return users
}

func (a *App) printTable(users []models.User) {
	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\tage\tiq\tbench_press")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", u.ID, u.Name, u.Age, u.IQ, u.BenchPress)
	}
	w.Flush()
}

// ViewAll prints the full table, or a notice when it is empty.
func (a *App) ViewAll(ctx context.Context) {
	users := a.readAll(ctx)
	if len(users) == 0 {
		fmt.Fprintln(a.Out, "Database is empty")
		return
	}
	fmt.Fprintln(a.Out, "\nCurrent database content:")
	a.printTable(users)
}

// Statistics prints the aggregate summary, or a notice when no data exists.
func (a *App) Statistics(ctx context.Context) {
	users := a.readAll(ctx)
	summary, ok := report.Summarize(users)
	if !ok {
		fmt.Fprintln(a.Out, "No data available for statistics")
		return
	}
	summary.Format(a.Out)
}

// Scatter builds the IQ vs bench press plot and offers to save it under a
// collision-free filename.
func (a *App) Scatter(ctx context.Context) {
	users := a.readAll(ctx)
	if len(users) == 0 {
		fmt.Fprintln(a.Out, "No data available for visualization")
		return
	}

	p, err := scatter.Build(users)
	if err != nil {
		logging.Errorf("build scatter: %v", err)
		fmt.Fprintf(a.Out, "Error creating scatter plot: %v\n", err)
		return
	}

	choice, err := a.Prompt.Line("Do you want to save the scatter? (y/n): ")
	if err != nil {
		return
	}
	if choice == "y" || choice == "Y" {
		name, err := scatter.SaveTo(p, a.PlotDir)
		if err != nil {
			logging.Errorf("save scatter: %v", err)
			fmt.Fprintf(a.Out, "Error saving scatter plot: %v\n", err)
			return
		}
		fmt.Fprintf(a.Out, "Scatter saved as %s\n", name)
	}
}

const menuText = `
Options:
1. View all users
2. Add new user
3. Delete user
4. Update user
5. Show statistics
6. Create scatter plot
7. Exit
`

// Run presents the menu until the operator exits or input ends. Bad menu
// input re-displays the menu with an error; it never aborts the loop.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.Out, "=== User Database Manager ===")
	for {
		fmt.Fprint(a.Out, menuText)
		choice, err := a.Prompt.Line("Choose an option (1-7): ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			a.ViewAll(ctx)
		case "2":
			a.Create(ctx)
		case "3":
			a.Delete(ctx)
		case "4":
			a.Update(ctx)
		case "5":
			a.Statistics(ctx)
		case "6":
			a.Scatter(ctx)
		case "7":
			fmt.Fprintln(a.Out, "Program ended")
			return
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please enter a number between 1 and 7.")
		}
	}
}
