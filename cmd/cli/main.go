// Command keuzekompas is a terminal client for the KeuzeKompas API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/client"
	"github.com/sbilibin2017/keuzekompas/internal/importer"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

const usage = `usage: keuzekompas [-api URL] [-session FILE] <command> [args]

commands:
  register -name NAME -email EMAIL -password PASSWORD
  login -email EMAIL -password PASSWORD
  logout
  profile
  modules [-q TERM] [-credits 15,30] [-levels NLQF5] [-locations Breda] [-favorites] [-options]
  module ID
  favorite ID        toggle a favorite
  favorites
  delete ID
  import FILE        create modules from a .csv or .xlsx file
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := logger.Initialize(getEnv("KEUZEKOMPAS_LOG_LEVEL", "warn"), logger.WithConsoleEncoding()); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// run parses the global flags, restores the session and dispatches the command.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("keuzekompas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api", getEnv("KEUZEKOMPAS_API_URL", "http://localhost:8080"), "API base URL")
	sessionPath := fs.String("session", getEnv("KEUZEKOMPAS_SESSION", client.DefaultSessionPath()), "Session file")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	c, err := client.New(*apiURL, client.NewTokenStore(*sessionPath), client.WithTimeout(*timeout))
	if err != nil {
		return err
	}

	a := &app{client: c, out: out}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "profile":
		return a.profile(ctx)
	case "modules":
		return a.modules(ctx, rest)
	case "module":
		return a.module(ctx, rest)
	case "favorite":
		return a.toggleFavorite(ctx, rest)
	case "favorites":
		return a.favorites(ctx)
	case "delete":
		return a.deleteModule(ctx, rest)
	case "import":
		return a.importModules(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

type app struct {
	client *client.Client
	out    io.Writer
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	user, err := a.client.Register(ctx, *name, *email, *password)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	user, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		logger.Log.Warnw("server logout failed, session removed locally", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) profile(ctx context.Context) error {
	user, err := a.client.Profile(ctx)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) modules(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("modules", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	term := fs.String("q", "", "Search term")
	credits := fs.String("credits", "", "Comma separated study credits")
	levels := fs.String("levels", "", "Comma separated levels")
	locations := fs.String("locations", "", "Comma separated locations")
	favoritesOnly := fs.Bool("favorites", false, "Only favorites")
	options := fs.Bool("options", false, "List the values each filter accepts")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	filter := catalog.Filter{
		SearchTerm:    *term,
		Levels:        splitList(*levels),
		Locations:     splitList(*locations),
		FavoritesOnly: *favoritesOnly,
	}
	for _, raw := range splitList(*credits) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid study credit %q", raw)
		}
		filter.Credits = append(filter.Credits, v)
	}

	all, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	facets := catalog.Facets(all)
	if *options {
		a.printFacets(facets)
		return nil
	}
	a.warnUnknown(facets, filter)

	shown := catalog.Apply(all, filter, a.client)
	summary := catalog.Summary(len(all), len(shown))
	if n := filter.ActiveCount(); n > 0 {
		summary += fmt.Sprintf(" (%d %s active)", n, plural(n, "filter", "filters"))
	}
	fmt.Fprintln(a.out, summary)
	a.printModules(shown)
	return nil
}

// loadCatalog fetches the favorites and the unfiltered catalog in one go;
// filtering happens locally.
func (a *app) loadCatalog(ctx context.Context) ([]models.ModuleDB, error) {
	if _, err := a.client.LoadFavorites(ctx); err != nil {
		return nil, describe(err)
	}
	all, err := a.client.Modules(ctx, catalog.Filter{})
	if err != nil {
		return nil, describe(err)
	}
	return all, nil
}

func (a *app) printFacets(facets models.ModuleFacets) {
	credits := make([]string, 0, len(facets.Credits))
	for _, c := range facets.Credits {
		credits = append(credits, strconv.Itoa(c))
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "credits\t%s\n", strings.Join(credits, ", "))
	fmt.Fprintf(tw, "levels\t%s\n", strings.Join(facets.Levels, ", "))
	fmt.Fprintf(tw, "locations\t%s\n", strings.Join(facets.Locations, ", "))
	tw.Flush()
}

// warnUnknown points out filter values no module carries; they can only
// ever narrow the result to nothing.
func (a *app) warnUnknown(facets models.ModuleFacets, filter catalog.Filter) {
	filter = filter.Normalize()
	for _, c := range filter.Credits {
		if !slices.Contains(facets.Credits, c) {
			fmt.Fprintf(a.out, "warning: no module has %d EC\n", c)
		}
	}
	for _, l := range filter.Levels {
		if !slices.Contains(facets.Levels, l) {
			fmt.Fprintf(a.out, "warning: unknown level %q\n", l)
		}
	}
	for _, l := range filter.Locations {
		if !slices.Contains(facets.Locations, l) {
			fmt.Fprintf(a.out, "warning: unknown location %q\n", l)
		}
	}
}

func (a *app) printModules(modules []models.ModuleDB) {
	if len(modules) == 0 {
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tEC\tLEVEL\tLOCATION")
	for _, m := range modules {
		star := ""
		if a.client.IsFavorite(m.ID) {
			star = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%s\n", star, m.ID, m.Name, m.StudyCredit, m.Level, m.Location)
	}
	tw.Flush()
}

func (a *app) module(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	m, err := a.client.Module(ctx, id)
	if err != nil {
		return describe(err)
	}

	fmt.Fprintf(a.out, "%d  %s\n", m.ID, m.Name)
	fmt.Fprintf(a.out, "%d EC, %s, %s\n", m.StudyCredit, m.Level, m.Location)
	if m.ShortDescription != "" {
		fmt.Fprintf(a.out, "\n%s\n", m.ShortDescription)
	}
	if m.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", m.Description)
	}
	if m.LearningOutcomes != nil && *m.LearningOutcomes != "" {
		fmt.Fprintf(a.out, "\nLearning outcomes:\n%s\n", *m.LearningOutcomes)
	}
	return nil
}

func (a *app) toggleFavorite(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if _, err := a.client.LoadFavorites(ctx); err != nil {
		return describe(err)
	}
	on, err := a.client.ToggleFavorite(ctx, id)
	if err != nil {
		return describe(err)
	}

	if on {
		fmt.Fprintf(a.out, "Module %d added to favorites (%d total)\n", id, a.client.FavoriteCount())
	} else {
		fmt.Fprintf(a.out, "Module %d removed from favorites (%d total)\n", id, a.client.FavoriteCount())
	}
	return nil
}

func (a *app) favorites(ctx context.Context) error {
	all, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d favorites\n", a.client.FavoriteCount())
	a.printModules(catalog.Apply(all, catalog.Filter{FavoritesOnly: true}, a.client))
	return nil
}

func (a *app) deleteModule(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteModule(ctx, id); err != nil {
		return describe(err)
	}
	fmt.Fprintf(a.out, "Module %d deleted\n", id)
	return nil
}

// importModules creates every module of the file. Rows the server rejects
// are reported and skipped.
func (a *app) importModules(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	reqs, err := importer.ReadFile(args[0])
	if err != nil {
		return err
	}

	created, failed := 0, 0
	for i := range reqs {
		if _, err := a.client.CreateModule(ctx, &reqs[i]); err != nil {
			failed++
			fmt.Fprintf(a.out, "module %d: %v\n", reqs[i].ID, describe(err))
			continue
		}
		created++
	}

	fmt.Fprintf(a.out, "Imported %d of %d modules\n", created, len(reqs))
	if failed > 0 {
		return fmt.Errorf("%d modules could not be imported", failed)
	}
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid module id %q", args[0])
	}
	return id, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// describe turns API errors into something a terminal user can act on.
func describe(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.Status == http.StatusUnauthorized && apiErr.Message == "Unauthorized" {
		return errors.New("not logged in or session expired, run: keuzekompas login")
	}
	if len(apiErr.Fields) == 0 {
		return errors.New(apiErr.Message)
	}

	fields := make([]string, 0, len(apiErr.Fields))
	for field, rule := range apiErr.Fields {
		fields = append(fields, field+" ("+rule+")")
	}
	sort.Strings(fields)
	return fmt.Errorf("%s: %s", apiErr.Message, strings.Join(fields, ", "))
}
