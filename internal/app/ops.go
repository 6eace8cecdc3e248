package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kina524/sql-data-analyzy-app/internal/logging"
	"github.com/kina524/sql-data-analyzy-app/internal/models"
	"github.com/kina524/sql-data-analyzy-app/internal/prompt"
	"github.com/kina524/sql-data-analyzy-app/internal/storage/sqlite"
)

// Create prompts for a full record and inserts it. Any validation failure
// restarts the whole record from the name prompt; an unexpected storage error
// aborts without inserting (the insert itself is transaction-protected).
func (a *App) Create(ctx context.Context) {
	st, err := a.openStore()
	if err != nil {
		logging.Errorf("open store: %v", err)
		fmt.Fprintf(a.Out, "An unexpected error occurred: %v\n", err)
		return
	}
	defer st.Close()

	for {
		u, err := a.promptRecord()
		if err != nil {
			if errors.Is(err, prompt.ErrEOF) {
				return
			}
			fmt.Fprintf(a.Out, "Invalid input: %v. Please try again\n", err)
			continue
		}

		if _, err := st.InsertUser(ctx, u); err != nil {
			logging.Errorf("insert user: %v", err)
			fmt.Fprintf(a.Out, "An unexpected error occurred: %v\n", err)
			return
		}
		fmt.Fprintln(a.Out, "New user was added")
		return
	}
}

// promptRecord reads all four fields in order, failing on the first invalid
// one so the caller restarts the record from the top.
func (a *App) promptRecord() (models.User, error) {
	var u models.User

	name, err := a.Prompt.Line("Name (Name_Lastname): ")
	if err != nil {
		return u, err
	}
	if err := prompt.ValidateName(name); err != nil {
		return u, err
	}

	age, err := a.Prompt.Int("Age: ")
	if err != nil {
		return u, err
	}
	if err := prompt.ValidateAge(age); err != nil {
		return u, err
	}

	iq, err := a.Prompt.Int("IQ: ")
	if err != nil {
		return u, err
	}
	if err := prompt.ValidateIQ(iq); err != nil {
		return u, err
	}

	bench, err := a.Prompt.Int("Bench press (kg): ")
	if err != nil {
		return u, err
	}
	if err := prompt.ValidateBenchPress(bench); err != nil {
		return u, err
	}

	u.Name = name
	u.Age = age
	u.IQ = iq
	u.BenchPress = bench
	return u, nil
}

// promptExistingID reads ids until one names an existing record. Non-numeric
// input and unknown ids re-prompt; storage errors abort.
func (a *App) promptExistingID(ctx context.Context, st *sqlite.Store, label string) (int64, error) {
	for {
		id, err := a.Prompt.Int(label)
		if errors.Is(err, prompt.ErrNotANumber) {
			fmt.Fprintln(a.Out, "Invalid input: Please enter a valid ID (number).")
			continue
		}
		if err != nil {
			return 0, err
		}

		exists, err := st.UserExists(ctx, int64(id))
		if err != nil {
			return 0, err
		}
		if !exists {
			fmt.Fprintln(a.Out, "User with this ID does not exist. Please try again")
			continue
		}
		return int64(id), nil
	}
}

// Delete lists the table and removes one record by id.
func (a *App) Delete(ctx context.Context) {
	users := a.readAll(ctx)
	if len(users) == 0 {
		fmt.Fprintln(a.Out, "Database is empty. Nothing to delete.")
		return
	}
	fmt.Fprintln(a.Out, "Current users:")
	a.printTable(users)

	st, err := a.openStore()
	if err != nil {
		logging.Errorf("open store: %v", err)
		fmt.Fprintf(a.Out, "Error deleting user: %v\n", err)
		return
	}
	defer st.Close()

	id, err := a.promptExistingID(ctx, st, "Enter user id to delete: ")
	if err != nil {
		if !errors.Is(err, prompt.ErrEOF) {
			logging.Errorf("delete user: %v", err)
			fmt.Fprintf(a.Out, "Error deleting user: %v\n", err)
		}
		return
	}

	if err := st.DeleteUser(ctx, id); err != nil {
		logging.Errorf("delete user: %v", err)
		fmt.Fprintf(a.Out, "Error deleting user: %v\n", err)
		return
	}
	fmt.Fprintln(a.Out, "User was deleted from DataBase")
}

// Update lists the table, picks one record by id and changes exactly one
// field chosen from a fixed menu. Invalid values restart the loop from the id
// prompt; storage errors abort the operation.
func (a *App) Update(ctx context.Context) {
	users := a.readAll(ctx)
	if len(users) == 0 {
		fmt.Fprintln(a.Out, "Database is empty. Nothing to update.")
		return
	}
	fmt.Fprintln(a.Out, "Current users:")
	a.printTable(users)

	st, err := a.openStore()
	if err != nil {
		logging.Errorf("open store: %v", err)
		fmt.Fprintf(a.Out, "Error updating user: %v\n", err)
		return
	}
	defer st.Close()

	for {
		id, err := a.promptExistingID(ctx, st, "Enter user id to update: ")
		if err != nil {
			if !errors.Is(err, prompt.ErrEOF) {
				logging.Errorf("update user: %v", err)
				fmt.Fprintf(a.Out, "Error updating user: %v\n", err)
			}
			return
		}

		fmt.Fprintln(a.Out, "What do you want to update?")
		fmt.Fprintln(a.Out, "1. Bench press")
		fmt.Fprintln(a.Out, "2. IQ")
		fmt.Fprintln(a.Out, "3. Age")
		fmt.Fprintln(a.Out, "4. Name")
		choice, err := a.Prompt.Line("Choose an option (1-4): ")
		if err != nil {
			return
		}

		field, value, done, err := a.promptFieldValue(choice)
		if err != nil {
			if errors.Is(err, prompt.ErrEOF) {
				return
			}
			logging.Errorf("update user: %v", err)
			fmt.Fprintf(a.Out, "Error updating user: %v\n", err)
			return
		}
		if !done {
			continue
		}

		if err := st.UpdateUserField(ctx, id, field, value); err != nil {
			logging.Errorf("update user: %v", err)
			fmt.Fprintf(a.Out, "Error updating user: %v\n", err)
			return
		}
		fmt.Fprintln(a.Out, fieldUpdatedMessage[field])
		return
	}
}

var fieldUpdatedMessage = map[sqlite.Field]string{
	sqlite.FieldBenchPress: "Bench press was updated",
	sqlite.FieldIQ:         "IQ was updated",
	sqlite.FieldAge:        "Age was updated",
	sqlite.FieldName:       "Name was updated",
}

// promptFieldValue reads the new value for the chosen field. done=false means
// the value (or the menu choice) was invalid and the caller should restart
// the update loop.
func (a *App) promptFieldValue(choice string) (sqlite.Field, any, bool, error) {
	switch choice {
	case "1":
		v, err := a.Prompt.Int("New bench press (kg): ")
		if errors.Is(err, prompt.ErrNotANumber) {
			fmt.Fprintln(a.Out, "Invalid input: Please enter a number.")
			return "", nil, false, nil
		}
		if err != nil {
			return "", nil, false, err
		}
		if err := prompt.ValidateBenchPress(v); err != nil {
			fmt.Fprintf(a.Out, "%v.\n", err)
			return "", nil, false, nil
		}
		return sqlite.FieldBenchPress, v, true, nil
	case "2":
		v, err := a.Prompt.Int("New IQ: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			fmt.Fprintln(a.Out, "Invalid input: Please enter a number.")
			return "", nil, false, nil
		}
		if err != nil {
			return "", nil, false, err
		}
		if err := prompt.ValidateIQ(v); err != nil {
			fmt.Fprintf(a.Out, "%v.\n", err)
			return "", nil, false, nil
		}
		return sqlite.FieldIQ, v, true, nil
	case "3":
		v, err := a.Prompt.Int("New age: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			fmt.Fprintln(a.Out, "Invalid input: Please enter a number.")
			return "", nil, false, nil
		}
		if err != nil {
			return "", nil, false, err
		}
		if err := prompt.ValidateAge(v); err != nil {
			fmt.Fprintf(a.Out, "%v.\n", err)
			return "", nil, false, nil
		}
		return sqlite.FieldAge, v, true, nil
	case "4":
		v, err := a.Prompt.Line("New name: ")
		if err != nil {
			return "", nil, false, err
		}
		if err := prompt.ValidateName(v); err != nil {
			fmt.Fprintf(a.Out, "%v.\n", err)
			return "", nil, false, nil
		}
		return sqlite.FieldName, v, true, nil
	default:
		fmt.Fprintln(a.Out, "Invalid choice. Please enter 1, 2, 3, or 4.")
		return "", nil, false, nil
	}
}
