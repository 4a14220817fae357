package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jrsteele09/ems-console/api"
	"github.com/jrsteele09/ems-console/router"
)

func (a *app) cmdEmployees(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: emsconsole employees list|get|add|update|delete")
	}
	if err := a.openScreen(router.RouteEmployees); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch args[0] {
	case "list":
		employees, err := a.employees.List(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDEPARTMENT")
		for _, e := range employees {
			dept := ""
			if e.Department != nil {
				dept = e.Department.Name
			}
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", e.ID, e.FirstName, e.LastName, e.Email, dept)
		}
		return w.Flush()

	case "get":
		flags := pflag.NewFlagSet("employees get", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "employee id")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			return errors.New("--id is required")
		}
		e, err := a.employees.Get(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s %s <%s> age %d\n", e.ID, e.FirstName, e.LastName, e.Email, e.Age)
		return nil

	case "add":
		if err := a.openScreen(router.RouteAddEmployee); err != nil {
			return err
		}
		flags := pflag.NewFlagSet("employees add", pflag.ContinueOnError)
		firstName := flags.String("first-name", "", "first name")
		lastName := flags.String("last-name", "", "last name")
		email := flags.String("email", "", "email address")
		age := flags.Int("age", 0, "age")
		departmentID := flags.Int64("department-id", 0, "department id")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *firstName == "" || *lastName == "" || *email == "" {
			return errors.New("--first-name, --last-name and --email are required")
		}
		emp := api.Employee{FirstName: *firstName, LastName: *lastName, Email: *email, Age: *age}
		if *departmentID != 0 {
			emp.Department = &api.Department{ID: *departmentID}
		}
		created, err := a.employees.Create(ctx, emp)
		if err != nil {
			return err
		}
		fmt.Printf("Created employee %d\n", created.ID)
		return nil

	case "update":
		flags := pflag.NewFlagSet("employees update", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "employee id")
		firstName := flags.String("first-name", "", "first name")
		lastName := flags.String("last-name", "", "last name")
		email := flags.String("email", "", "email address")
		age := flags.Int("age", 0, "age")
		departmentID := flags.Int64("department-id", 0, "department id")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			return errors.New("--id is required")
		}
		// The edit form resends the whole record, so unset flags fall back to
		// the current values.
		current, err := a.employees.Get(ctx, *id)
		if err != nil {
			return err
		}
		emp := *current
		if *firstName != "" {
			emp.FirstName = *firstName
		}
		if *lastName != "" {
			emp.LastName = *lastName
		}
		if *email != "" {
			emp.Email = *email
		}
		if *age != 0 {
			emp.Age = *age
		}
		if *departmentID != 0 {
			emp.Department = &api.Department{ID: *departmentID}
		}
		updated, err := a.employees.Update(ctx, *id, emp)
		if err != nil {
			return err
		}
		fmt.Printf("Updated employee %d\n", updated.ID)
		return nil

	case "delete":
		flags := pflag.NewFlagSet("employees delete", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "employee id")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			return errors.New("--id is required")
		}
		if err := a.employees.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("Deleted employee %d\n", *id)
		return nil
	}
	return errors.Errorf("unknown employees subcommand: %s", args[0])
}

func (a *app) cmdDepartments(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: emsconsole departments list|add|update|delete")
	}
	if err := a.openScreen(router.RouteDepartments); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch args[0] {
	case "list":
		departments, err := a.departments.List(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, d := range departments {
			fmt.Fprintf(w, "%d\t%s\n", d.ID, d.Name)
		}
		return w.Flush()

	case "add":
		flags := pflag.NewFlagSet("departments add", pflag.ContinueOnError)
		name := flags.String("name", "", "department name")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" {
			return errors.New("--name is required")
		}
		created, err := a.departments.Create(ctx, api.Department{Name: *name})
		if err != nil {
			return err
		}
		fmt.Printf("Created department %d\n", created.ID)
		return nil

	case "update":
		flags := pflag.NewFlagSet("departments update", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "department id")
		name := flags.String("name", "", "new department name")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 || *name == "" {
			return errors.New("--id and --name are required")
		}
		updated, err := a.departments.Update(ctx, *id, api.Department{ID: *id, Name: *name})
		if err != nil {
			return err
		}
		fmt.Printf("Updated department %d\n", updated.ID)
		return nil

	case "delete":
		flags := pflag.NewFlagSet("departments delete", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "department id")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			return errors.New("--id is required")
		}
		if err := a.departments.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("Deleted department %d\n", *id)
		return nil
	}
	return errors.Errorf("unknown departments subcommand: %s", args[0])
}

func (a *app) cmdDashboard(args []string) error {
	if len(args) > 0 {
		return errors.New("usage: emsconsole dashboard")
	}
	if err := a.openScreen(router.RouteDashboard); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	counts, err := a.analytics.EmployeesByDepartment(ctx)
	if err != nil {
		return err
	}

	var max int64
	for _, c := range counts {
		if c.EmployeeCount > max {
			max = c.EmployeeCount
		}
	}
	fmt.Println("Employees by department")
	for _, c := range counts {
		bar := 0
		if max > 0 {
			bar = int(c.EmployeeCount * 40 / max)
		}
		fmt.Printf("%-24s %4d %s\n", c.DepartmentName, c.EmployeeCount, bars(bar))
	}
	return nil
}

func bars(n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = '█'
	}
	return string(out)
}
