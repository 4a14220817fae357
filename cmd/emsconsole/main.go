// The emsconsole CLI is a terminal client for the employee management
// service. Each command is one screen: it passes the route guard, consults
// the role gate where the screen is admin-only, and talks to the backend
// through the shared authenticated client.
//
// Usage:
//
//	emsconsole login [--username U] [--password P]
//	emsconsole logout
//	emsconsole register --username U [--password P]
//	emsconsole whoami
//	emsconsole employees list|get|add|update|delete ...
//	emsconsole departments list|add|update|delete ...
//	emsconsole admin users|roles|permissions|assign-role|remove-role ...
//	emsconsole audit [--page N] [--size N] [--action A] ...
//	emsconsole dashboard
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	if len(args) == 0 {
		printUsage()
		return nil
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(rest)
	case "logout":
		return a.cmdLogout(rest)
	case "register":
		return a.cmdRegister(rest)
	case "whoami":
		return a.cmdWhoAmI(rest)
	case "employees":
		return a.cmdEmployees(rest)
	case "departments":
		return a.cmdDepartments(rest)
	case "admin":
		return a.cmdAdmin(rest)
	case "audit":
		return a.cmdAudit(rest)
	case "dashboard":
		return a.cmdDashboard(rest)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage() {
	figure.NewFigure("EMS Console", "cybermedium", true).Print()
	fmt.Print(`
Commands:
  login         Authenticate and start a session
  logout        Clear the session and return to login
  register      Create a new account
  whoami        Show the logged-in user and roles
  employees     List and manage employees
  departments   List and manage departments
  admin         User/role administration (ADMIN or HR only)
  audit         Query the audit log (ADMIN or HR only)
  dashboard     Employees-by-department summary

Environment:
  EMS_API_URL          Backend base URL
  EMS_STATE_FILE       Session state file location
  EMS_POLL_INTERVAL    Session observer cadence
  EMS_LOG_LEVEL        zerolog level (default warn)
`)
}
