package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jrsteele09/ems-console/api"
	"github.com/jrsteele09/ems-console/rbac"
	"github.com/jrsteele09/ems-console/router"
)

func (a *app) cmdAdmin(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: emsconsole admin users|roles|permissions|assign-role|remove-role")
	}
	if err := a.openScreen(router.RouteAdmin); err != nil {
		return err
	}
	if err := a.requireAnyRole(rbac.RoleAdmin, rbac.RoleHR); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch args[0] {
	case "users":
		users, err := a.admin.Users(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tROLES")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, roleNames(u.Roles))
		}
		return w.Flush()

	case "roles":
		roles, err := a.admin.Roles(ctx)
		if err != nil {
			return err
		}
		for _, r := range roles {
			fmt.Printf("%s - %s (%d permissions)\n", r.Name, r.Description, len(r.Permissions))
		}
		return nil

	case "permissions":
		permissions, err := a.admin.Permissions(ctx)
		if err != nil {
			return err
		}
		for _, p := range permissions {
			fmt.Printf("%s - %s\n", p.Name, p.Description)
		}
		return nil

	case "assign-role", "remove-role":
		flags := pflag.NewFlagSet("admin "+args[0], pflag.ContinueOnError)
		userID := flags.Int64("user-id", 0, "target user id")
		role := flags.String("role", "", "role name")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *userID == 0 || *role == "" {
			return errors.New("--user-id and --role are required")
		}
		actorID, err := a.actorUserID()
		if err != nil {
			return err
		}
		if args[0] == "assign-role" {
			err = a.admin.AssignRole(ctx, *userID, *role, actorID)
		} else {
			err = a.admin.RemoveRole(ctx, *userID, *role, actorID)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: user %d, role %s\n", args[0], *userID, *role)
		return nil
	}
	return errors.Errorf("unknown admin subcommand: %s", args[0])
}

func (a *app) cmdAudit(args []string) error {
	if err := a.openScreen(router.RouteAuditLogs); err != nil {
		return err
	}
	if err := a.requireAnyRole(rbac.RoleAdmin, rbac.RoleHR); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("audit", pflag.ContinueOnError)
	page := flags.Int("page", 0, "zero-based page index")
	size := flags.Int("size", 20, "page size")
	sort := flags.String("sort", api.DefaultAuditSort, "sort specifier (field,dir)")
	actor := flags.Int64("actor", 0, "filter by actor user id")
	action := flags.String("action", "", "filter by action")
	resourceType := flags.String("resource-type", "", "filter by resource type")
	start := flags.String("start", "", "start timestamp (RFC3339)")
	end := flags.String("end", "", "end timestamp (RFC3339)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	filter := api.AuditFilter{
		ActorUserID:  *actor,
		Action:       *action,
		ResourceType: *resourceType,
	}
	var err error
	if *start != "" {
		if filter.StartDate, err = time.Parse(time.RFC3339, *start); err != nil {
			return errors.Wrap(err, "parse --start")
		}
	}
	if *end != "" {
		if filter.EndDate, err = time.Parse(time.RFC3339, *end); err != nil {
			return errors.Wrap(err, "parse --end")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	result, err := a.audit.Query(ctx, filter, *page, *size, *sort)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTOR\tACTION\tRESOURCE\tDETAILS")
	for _, entry := range result.Content {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s %s\t%s\n",
			entry.Timestamp.Format(time.RFC3339), entry.ActorUserID,
			entry.Action, entry.ResourceType, entry.ResourceID, entry.Details)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d (%d entries)\n", *page+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) actorUserID() (int64, error) {
	sess, err := a.store.Read()
	if err != nil {
		return 0, err
	}
	if sess == nil {
		return 0, errors.New("not logged in")
	}
	var id int64
	if _, err := fmt.Sscanf(sess.Profile.UserID, "%d", &id); err != nil {
		return 0, errors.Errorf("stored user id %q is not numeric", sess.Profile.UserID)
	}
	return id, nil
}

func roleNames(roles []api.Role) string {
	if len(roles) == 0 {
		return "-"
	}
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += ","
		}
		out += r.Name
	}
	return out
}
