package cmd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/posit-dev/connect-gallery-action/internal/cmd"
	"github.com/posit-dev/connect-gallery-action/internal/cmd/output"
	"github.com/posit-dev/connect-gallery-action/internal/config"
	"github.com/posit-dev/connect-gallery-action/internal/errors"
	"github.com/posit-dev/connect-gallery-action/internal/flags"
	"github.com/posit-dev/connect-gallery-action/internal/gallery"
	"github.com/posit-dev/connect-gallery-action/internal/manifest"
	"github.com/posit-dev/connect-gallery-action/internal/release"
)

type GenerateCmd struct {
	*cmd.BaseCmd
	configLoader config.Loader
}

func NewGenerateCmd(logger hclog.Logger) *cobra.Command {
	c := &GenerateCmd{
		BaseCmd:      &cmd.BaseCmd{},
		configLoader: &config.DefaultLoader{},
	}
	c.SetLogger(logger)

	cobraCommand := &cobra.Command{
		Use:   "generate",
		Short: "Builds the gallery document and writes it to the output path.",
		Long:  c.longDescription(),
		RunE:  c.run,
	}

	return cobraCommand
}

// longDescription returns the long version of the command description.
func (c *GenerateCmd) longDescription() string {
	return `Reads one manifest per extension directory, queries the hosting repository for
published releases (or reads them from a file), reconciles the two into the
extension list, and writes the gallery JSON document.`
}

// requiredInputs validates the configuration surface before any core logic
// runs. Every missing input is reported; nothing is written on failure.
func (c *GenerateCmd) requiredInputs() error {
	required := []struct {
		value    string
		flagName string
		envVar   string
	}{
		{flags.ExtensionsDir, flags.FlagNameExtensionsDir, flags.EnvVarExtensionsDir},
		{flags.ConfigFile, flags.FlagNameConfigFile, flags.EnvVarConfigFile},
		{flags.OutputFile, flags.FlagNameOutputFile, flags.EnvVarOutputFile},
	}

	for _, input := range required {
		if input.value == "" {
			return fmt.Errorf("%w: --%s (or %s)", errors.ErrMissingInput, input.flagName, input.envVar)
		}
	}

	// The repository is only required when releases aren't supplied as a file.
	if flags.Repository == "" && flags.ReleasesFile == "" {
		return fmt.Errorf("%w: --%s (or %s)", errors.ErrMissingInput, flags.FlagNameRepository, flags.EnvVarRepository)
	}

	return nil
}

func (c *GenerateCmd) run(cobraCmd *cobra.Command, _ []string) error {
	if err := c.requiredInputs(); err != nil {
		return err
	}

	logger := c.Logger().Named("generate")

	cfg, err := c.configLoader.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	manifests, err := manifest.NewLoader(c.Logger()).LoadDir(flags.ExtensionsDir)
	if err != nil {
		return err
	}

	lister, err := c.releaseLister()
	if err != nil {
		return err
	}

	releases, err := lister.List(cobraCmd.Context())
	if err != nil {
		return err
	}

	logger.Debug("Building gallery", "manifests", len(manifests), "releases", len(releases))

	extensions := gallery.BuildExtensions(manifests, releases)
	tags, features := gallery.CollectTagsAndFeatures(manifests)
	doc := gallery.BuildOutput(extensions, cfg, tags, features)

	if err := output.WriteFile(flags.OutputFile, doc); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrOutputWriteFailed, err)
	}

	fmt.Fprintf(
		cobraCmd.OutOrStdout(),
		"Gallery written to %s (%d extensions)\n",
		flags.OutputFile, len(doc.Extensions),
	)

	return nil
}

// releaseLister selects the release source: a canonical releases file when
// supplied, otherwise the hosting repository via 'gh'.
func (c *GenerateCmd) releaseLister() (release.Lister, error) {
	if flags.ReleasesFile != "" {
		return release.NewFileLister(c.Logger(), flags.ReleasesFile)
	}
	return release.NewGitHubLister(c.Logger(), flags.Repository)
}
