package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lacycat/langcat/cli/cmd"
	"github.com/lacycat/langcat/lang"
	"github.com/lacycat/langcat/log"
	"github.com/lacycat/langcat/pkg"
)

// CLI is the top-level command-line interface for lacat.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	NestedLists bool   `help:"Split list values only at commas outside nested lists and strings." name:"nested-lists"`
	Dir         string `help:"Directory containing the files named by file keys."                 short:"C"           default:"." type:"path"`

	Fmt     cmd.Fmt     `cmd:"" help:"Format a document."`
	Get     cmd.Get     `cmd:"" help:"Print the value at file.group.key."`
	Set     cmd.Set     `cmd:"" help:"Store a value at file.group.key."`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate an expression against a document."`
	Check   cmd.Check   `cmd:"" help:"Validate documents."`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file."`
	Version cmd.Version `cmd:"" help:"Print version information."`
}

// Run executes the lacat CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout io.Writer,
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + lang.FileExt)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that messages logged while parsing use the
	// requested configuration regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(groups(cli.Log.group(), cli.Pprof.group())),
		// The provider reads ctx when a command runs, after the values below
		// have been added.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx, baseConfig), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values.
	cli.Log.start(ctx)

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOutput(ctx, stdout)
	ctx = cmd.WithOptions(ctx,
		lang.WithLogger(log.Default()),
		lang.WithNestedLists(cli.NestedLists),
		lang.WithDir(cli.Dir),
	)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli)
}

// groups drops groups without a key, such as the profiling group when
// profiling is not compiled in.
func groups(gs ...kong.Group) []kong.Group {
	out := make([]kong.Group, 0, len(gs))

	for _, g := range gs {
		if g.Key != "" {
			out = append(out, g)
		}
	}

	return out
}
