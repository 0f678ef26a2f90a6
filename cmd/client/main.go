// Command client drives the recipe catalog API from the terminal,
// through the same form controller contract the browser client follows.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/gik339/recipe-catalog/internal/form"
	"github.com/gik339/recipe-catalog/internal/pricing"
	"github.com/gik339/recipe-catalog/internal/view"
	"github.com/gik339/recipe-catalog/pkg/client"
)

func main() {
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipes",
		Usage: "Manage the menu-item catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "http://localhost:3000",
				Usage: "Base URL of the catalog API",
			},
		},
		Commands: []*cli.Command{
			listCmd(),
			menuCmd(),
			addCmd(),
			editCmd(),
			deleteCmd(),
		},
	}
}

type session struct {
	controller *form.Controller
	notice     *form.InlineNotice
}

func newSession(cmd *cli.Command) *session {
	notice := form.NewInlineNotice(form.DefaultNoticeTTL)
	api := client.New(cmd.String("server"))

	return &session{
		controller: form.NewController(api, form.NewNotifier(nil, notice)),
		notice:     notice,
	}
}

func (s *session) printNotice() {
	message, severity, visible := s.notice.Current()
	if !visible {
		return
	}

	out := os.Stdout
	if severity == form.SeverityError {
		out = os.Stderr
	}
	fmt.Fprintln(out, message)
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every recipe with derived totals",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := newSession(cmd)
			if err := s.controller.Refresh(ctx); err != nil {
				s.printNotice()
				return err
			}

			rendered := view.RenderList(s.controller.Records())
			if rendered.Empty != "" {
				fmt.Println(rendered.Empty)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSERVINGS\tTOTAL\tTIER")
			for _, item := range rendered.Items {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n",
					item.ID, item.Name, item.UnitPrice, item.Servings, item.Total, item.Tier)
			}

			return w.Flush()
		},
	}
}

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Show the orderable menu items and their unit prices",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range pricing.Names() {
				fmt.Fprintf(w, "%s\t%d\n", name, pricing.PriceOf(name))
			}

			return w.Flush()
		},
	}
}

func addCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Create a recipe from a menu item name and servings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Menu item name (see the menu command)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "servings",
				Usage:    "Number of servings ordered",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := newSession(cmd)
			s.controller.SetName(cmd.String("name"))
			s.controller.SetServings(int(cmd.Int("servings")))

			err := s.controller.Submit(ctx)
			s.printNotice()

			return err
		},
	}
}

func editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit an existing recipe by id",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "New menu item name (keeps the current one when omitted)",
			},
			&cli.IntFlag{
				Name:  "servings",
				Usage: "New number of servings (keeps the current one when omitted)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := parseID(cmd.Args().First())
			if err != nil {
				return err
			}

			s := newSession(cmd)
			if err = s.controller.SelectCurrent(ctx, id); err != nil {
				s.printNotice()
				return err
			}

			if name := cmd.String("name"); name != "" {
				s.controller.SetName(name)
			}
			if servings := int(cmd.Int("servings")); servings > 0 {
				s.controller.SetServings(servings)
			}

			err = s.controller.Submit(ctx)
			s.printNotice()

			return err
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a recipe by id",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := parseID(cmd.Args().First())
			if err != nil {
				return err
			}

			s := newSession(cmd)
			err = s.controller.Delete(ctx, id)
			s.printNotice()

			return err
		},
	}
}

func parseID(arg string) (uint, error) {
	if arg == "" {
		return 0, fmt.Errorf("missing required argument: id")
	}

	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return uint(id), nil
}
