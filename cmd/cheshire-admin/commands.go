// ABOUTME: Resource commands for the admin CLI
// ABOUTME: Each command calls one endpoint group and prints a colored table

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/2389/cheshire-client/endpoints"
	"github.com/2389/cheshire-client/transport"
)

// cmdLogin exchanges username and password for a token and saves it
func (a *app) cmdLogin(ctx context.Context, args []string) error {
	username, password := a.cfg.Auth.Username, a.cfg.Auth.Password
	if len(args) >= 2 {
		username, password = args[0], args[1]
	}
	if username == "" || password == "" {
		return fmt.Errorf("usage: login <username> <password> (or set auth.username and auth.password)")
	}

	out, err := a.client.Users.Token(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	path, err := saveToken(out.AccessToken)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("Logged in as %s\n", username)
	fmt.Printf("  Token saved to %s\n", path)
	if exp, ok := transport.TokenExpiry(out.AccessToken); ok {
		fmt.Printf("  Expires %s (in %s)\n", exp.Local().Format("Jan 02 15:04"), time.Until(exp).Round(time.Minute))
	}
	return nil
}

// cmdUsers lists users of the configured agent
func (a *app) cmdUsers(ctx context.Context) error {
	users, err := a.client.Users.List(ctx, a.id)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	printHeader("Users")
	if len(users) == 0 {
		fmt.Println("  (no users)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tUSERNAME\tPERMISSIONS")
	fmt.Fprintln(w, "  --\t--------\t-----------")
	for _, u := range users {
		resources := make([]string, 0, len(u.Permissions))
		for resource := range u.Permissions {
			resources = append(resources, resource)
		}
		sort.Strings(resources)
		fmt.Fprintf(w, "  %s\t%s\t%s\n", truncate(u.ID, 36), u.Username, truncate(strings.Join(resources, ","), 48))
	}
	w.Flush()
	fmt.Println()
	return nil
}

// cmdSettings lists settings, optionally filtered by name
func (a *app) cmdSettings(ctx context.Context, args []string) error {
	search := strings.Join(args, " ")
	out, err := a.client.Settings.List(ctx, search, a.id)
	if err != nil {
		return fmt.Errorf("listing settings: %w", err)
	}

	printHeader("Settings")
	if len(out.Settings) == 0 {
		fmt.Println("  (no settings)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tCATEGORY\tUPDATED")
	fmt.Fprintln(w, "  --\t----\t--------\t-------")
	for _, s := range out.Settings {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%v\n", truncate(s.SettingID, 36), s.Name, s.Category, s.UpdatedAt)
	}
	w.Flush()
	fmt.Println()
	return nil
}

// cmdPlugins lists plugins or toggles one
func (a *app) cmdPlugins(ctx context.Context, args []string) error {
	if len(args) >= 1 && args[0] == "toggle" {
		if len(args) < 2 {
			return fmt.Errorf("usage: plugins toggle <plugin-id>")
		}
		out, err := a.client.Plugins.Toggle(ctx, args[1], a.id)
		if err != nil {
			return fmt.Errorf("toggling plugin: %w", err)
		}
		color.Green("%s\n", out.Info)
		return nil
	}

	out, err := a.client.Plugins.List(ctx, strings.Join(args, " "), a.id)
	if err != nil {
		return fmt.Errorf("listing plugins: %w", err)
	}

	printHeader("Installed Plugins")
	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tVERSION\tACTIVE\tHOOKS\tTOOLS")
	fmt.Fprintln(w, "  --\t-------\t------\t-----\t-----")
	for _, p := range out.Installed {
		active := dim.Sprint("no")
		if p.Active {
			active = green.Sprint("yes")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%d\n", truncate(p.ID, 32), p.Version, active, len(p.Hooks), len(p.Tools))
	}
	w.Flush()

	if len(out.Registry) > 0 {
		printHeader("Registry")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, p := range out.Registry {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", truncate(p.Name, 32), p.Version, truncate(p.Description, 60))
		}
		w.Flush()
	}
	fmt.Println()
	return nil
}

// cmdCollections lists memory collections with their sizes
func (a *app) cmdCollections(ctx context.Context) error {
	out, err := a.client.Memory.Collections(ctx, a.id)
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	printHeader("Memory Collections")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tVECTORS")
	fmt.Fprintln(w, "  ----\t-------")
	for _, c := range out.Collections {
		fmt.Fprintf(w, "  %s\t%d\n", c.Name, c.VectorsCount)
	}
	w.Flush()
	fmt.Println()
	return nil
}

// cmdUpload ingests one or more files into the agent's memory
func (a *app) cmdUpload(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: upload <file>...")
	}

	green := color.New(color.FgGreen)
	if len(args) == 1 {
		out, err := a.client.RabbitHole.PostFile(ctx, args[0], "", endpoints.IngestOptions{}, a.id)
		if err != nil {
			return fmt.Errorf("uploading %s: %w", args[0], err)
		}
		green.Printf("%s: %s\n", out.Filename, out.Info)
		return nil
	}

	out, err := a.client.RabbitHole.PostFiles(ctx, args, endpoints.IngestOptions{}, a.id)
	if err != nil {
		return fmt.Errorf("uploading files: %w", err)
	}
	names := make([]string, 0, len(out))
	for name := range out {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		green.Printf("%s: %s\n", name, out[name].Info)
	}
	return nil
}

// cmdMimeTypes lists the file types the agent accepts
func (a *app) cmdMimeTypes(ctx context.Context) error {
	out, err := a.client.RabbitHole.AllowedMimeTypes(ctx, a.id)
	if err != nil {
		return fmt.Errorf("listing mime types: %w", err)
	}

	printHeader("Allowed MIME Types")
	for _, m := range out.Allowed {
		fmt.Printf("  %s\n", m)
	}
	fmt.Println()
	return nil
}

// cmdAgents lists every agent of the installation
func (a *app) cmdAgents(ctx context.Context) error {
	agents, err := a.client.Admins.Agents(ctx)
	if err != nil {
		return fmt.Errorf("listing agents: %w", err)
	}

	printHeader("Agents")
	if len(agents) == 0 {
		fmt.Println("  (no agents)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tMETADATA KEYS")
	fmt.Fprintln(w, "  --\t-------------")
	for _, ag := range agents {
		keys := make([]string, 0, len(ag.Metadata))
		for k := range ag.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, "  %s\t%s\n", ag.AgentID, strings.Join(keys, ","))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func printHeader(title string) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  " + title)
	cyan.Println("  " + strings.Repeat("-", len(title)))
}
