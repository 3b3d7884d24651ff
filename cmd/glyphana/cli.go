package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/ops"
	"github.com/virtualritz/glyphana/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(env *ops.Env) *cli.App {
	app := &cli.App{
		Name:    "glyphana",
		Usage:   "Unicode character search and collection",
		Version: Version,
		Commands: []*cli.Command{
			searchCmd(env),
			infoCmd(env),
			categoriesCmd(env),
			recentCmd(env),
			collectCmd(env),
			uncollectCmd(env),
			collectionCmd(env),
			exportCmd(env),
			webCmd(env),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// searchCmd creates the search command.
func searchCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search characters by text, name, or codepoint notation",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "names", Aliases: []string{"n"}, Usage: "Also match character names (fuzzy)"},
			&cli.BoolFlag{Name: "case", Aliases: []string{"c"}, Usage: "Match case exactly"},
			&cli.StringFlag{Name: "category", Usage: "Restrict to one category, e.g. Latin"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum results"},
			&cli.IntFlag{Name: "offset", Usage: "Results to skip"},
		},
		Action: func(c *cli.Context) error {
			names := c.Bool("names")
			caseSensitive := c.Bool("case")

			input := ops.SearchInput{
				Query:    strings.Join(c.Args().Slice(), " "),
				Category: c.String("category"),
				Limit:    c.Int("limit"),
				Offset:   c.Int("offset"),
			}
			if c.IsSet("names") {
				input.SearchNames = &names
			}
			if c.IsSet("case") {
				input.CaseSensitive = &caseSensitive
			}

			output, err := ops.Search(env, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// infoCmd creates the info command.
func infoCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Inspect a single character (name, block, encodings)",
		ArgsUsage: "<char>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-touch", Usage: "Do not record the character as recently used"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("char argument is required"))
			}

			output, err := ops.Info(env, ops.InfoInput{
				Char:  c.Args().First(),
				Touch: !c.Bool("no-touch"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// categoriesCmd creates the categories command.
func categoriesCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List categories, or reorder them with --order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "order", Usage: "Comma-separated category names to move to the front"},
		},
		Action: func(c *cli.Context) error {
			var (
				output *ops.CategoriesOutput
				err    error
			)
			if order := c.String("order"); order != "" {
				output, err = ops.ReorderCategories(env, ops.ReorderInput{Names: splitList(order)})
			} else {
				output, err = ops.Categories(env)
			}
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// recentCmd creates the recent command.
func recentCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "List recently used characters, most recent first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "touch", Usage: "Mark a character as just used instead of listing"},
		},
		Action: func(c *cli.Context) error {
			if char := c.String("touch"); char != "" {
				output, err := ops.Touch(env, ops.TouchInput{Char: char})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := ops.Recent(env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// collectCmd creates the collect command.
func collectCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "collect",
		Usage:     "Add a character to the collection",
		ArgsUsage: "<char>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("char argument is required"))
			}

			output, err := ops.Collect(env, ops.CollectInput{Char: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// uncollectCmd creates the uncollect command.
func uncollectCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "uncollect",
		Usage:     "Remove a character from the collection",
		ArgsUsage: "<char>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("char argument is required"))
			}

			output, err := ops.Uncollect(env, ops.CollectInput{Char: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// collectionCmd creates the collection command.
func collectionCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "collection",
		Usage: "List the collected characters",
		Action: func(c *cli.Context) error {
			output, err := ops.Collection(env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Render a markdown character sheet of the collection",
		ArgsUsage: "[chars...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Sheet title"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write to a file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(env, ops.ExportInput{
				Chars: c.Args().Slice(),
				Title: c.String("title"),
			})
			if err != nil {
				return outputError(err)
			}

			if out := c.String("out"); out != "" {
				if err := os.WriteFile(out, []byte(output.Markdown), 0644); err != nil {
					return outputError(errors.NewInternal(err))
				}
				fmt.Fprintf(c.App.Writer, "wrote %d characters to %s\n", output.Count, out)
				return nil
			}

			fmt.Fprint(c.App.Writer, output.Markdown)
			return nil
		},
	}
}

// webCmd creates the web command.
func webCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind := env.Config.WebBind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := env.Config.WebPort
			if c.IsSet("port") {
				port = c.Int("port")
			}

			if !isLoopback(bind) && !env.Config.AllowRemoteWeb {
				return outputError(errors.NewInvalidRequest(
					"refusing to bind the web UI to a non-loopback address; set allow_remote_web in the config to override"))
			}

			srv := web.NewServer(env, Version, bind, port)
			if err := web.Run(srv); err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if gErr, ok := err.(*errors.GlyphanaError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", gErr.Code, gErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// splitList splits a comma-separated string, trimming whitespace.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// isLoopback reports whether the bind address is local-only.
func isLoopback(bind string) bool {
	if bind == "localhost" || bind == "" {
		return true
	}
	ip := net.ParseIP(bind)
	return ip != nil && ip.IsLoopback()
}
