package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jrsteele09/ems-console/router"
)

const commandTimeout = 2 * time.Minute

// openScreen runs the route guard for a privileged screen. A denial prints
// the login redirect and stops the command before any network traffic.
func (a *app) openScreen(route string) error {
	decision, err := a.guard.Check(route)
	if err != nil {
		return err
	}
	if decision != router.DecisionAllowed {
		fmt.Printf("Please log in to continue to %s.\n", route)
		return errors.New("not logged in; run 'emsconsole login'")
	}
	return nil
}

// requireAnyRole is the admin screens' pre-render filter: when the role is
// missing an access-denied state is shown and no request is issued.
func (a *app) requireAnyRole(names ...string) error {
	if a.gate.HasAnyRole(names...) {
		return nil
	}
	fmt.Println("Access denied: this screen requires one of:", strings.Join(names, ", "))
	return errors.New("insufficient role")
}

func (a *app) cmdLogin(args []string) error {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	username := flags.String("username", "", "account username")
	password := flags.String("password", "", "account password (prompted when omitted)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if *username == "" || *password == "" {
		// The prompt can sit open for a while. Watch the store so a session
		// appearing or dying underneath it, from another window, is announced
		// rather than silently replaced.
		a.observer.Subscribe(func(active bool) {
			if active {
				fmt.Printf("A session is active as %s; logging in replaces it.\n", a.store.Username())
			} else {
				fmt.Println("No active session.")
			}
		})
		a.observer.Start(ctx)
	}

	if *username == "" {
		*username = prompt("Username: ")
	}
	if *password == "" {
		*password = prompt("Password: ")
	}

	sess, err := a.flow.Submit(ctx, *username, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Login successful. Welcome back, %s!\n", sess.Profile.Username)
	if roles := sess.Profile.Roles; len(roles) > 0 {
		fmt.Printf("Roles: %s\n", strings.Join(roles, ", "))
	}
	fmt.Printf("Continuing to %s\n", a.nav.Current())
	return nil
}

func (a *app) cmdLogout(args []string) error {
	if len(args) > 0 {
		return errors.New("usage: emsconsole logout")
	}
	if err := a.flow.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) cmdRegister(args []string) error {
	flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
	username := flags.String("username", "", "desired username")
	password := flags.String("password", "", "desired password (prompted when omitted)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("--username is required")
	}
	if *password == "" {
		*password = prompt("Password: ")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := a.flow.Register(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Println("Registered. Run 'emsconsole login' to sign in.")
	return nil
}

func (a *app) cmdWhoAmI(args []string) error {
	if len(args) > 0 {
		return errors.New("usage: emsconsole whoami")
	}
	if err := a.openScreen(router.RouteProfile); err != nil {
		return err
	}

	sess, err := a.store.Read()
	if err != nil {
		return err
	}
	if sess == nil {
		return errors.New("not logged in")
	}
	fmt.Printf("Logged in as: %s (user id %s)\n", sess.Profile.Username, sess.Profile.UserID)
	if len(sess.Profile.Roles) > 0 {
		fmt.Printf("Roles: %s\n", strings.Join(sess.Profile.Roles, ", "))
	} else {
		fmt.Println("Roles: none")
	}
	return nil
}

func prompt(label string) string {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
