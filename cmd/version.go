package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/killallgit/podcast-api/api"
	"github.com/killallgit/podcast-api/api/version"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm/schema"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// buildInfo is what `version` reports; the server exposes the same build
// fields at /version.
type buildInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	GitCommit string   `json:"git_commit"`
	BuildDate string   `json:"build_date"`
	GoVersion string   `json:"go_version"`
	Platform  string   `json:"platform"`
	APIBase   string   `json:"api_base"`
	Tables    []string `json:"tables"`
}

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Display the build of the Podcast API: version, commit and build date,
the API base path it serves and the tables its schema manages.`,
		Annotations: map[string]string{"skipConfig": "true"},
		RunE:        runVersion,
	}
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print the build information as JSON")
	return versionCmd
}

// publishBuildInfo hands the linker-set values to the /version handler
func publishBuildInfo() {
	version.Version, version.GitCommit, version.BuildDate = Version, GitCommit, BuildTime
}

func currentBuild() (buildInfo, error) {
	tables, err := schemaTables()
	if err != nil {
		return buildInfo{}, err
	}
	return buildInfo{
		Name:      version.Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		APIBase:   api.BasePath,
		Tables:    tables,
	}, nil
}

// schemaTables names the tables of every migrated model without a database
func schemaTables() ([]string, error) {
	cache := &sync.Map{}
	all := models.All()
	tables := make([]string, 0, len(all))
	for _, m := range all {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		if err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}
		tables = append(tables, s.Table)
	}
	return tables, nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", Version)
		return nil
	}

	info, err := currentBuild()
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "%s v%s (commit %s, built %s)\n", info.Name, info.Version, info.GitCommit, info.BuildDate)
	fmt.Fprintf(out, "  api:     %s\n", info.APIBase)
	fmt.Fprintf(out, "  schema:  %d tables (%s)\n", len(info.Tables), strings.Join(info.Tables, ", "))
	fmt.Fprintf(out, "  runtime: %s %s\n", info.GoVersion, info.Platform)
	return nil
}
