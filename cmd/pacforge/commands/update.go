package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pacforge/internal/app"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/ui/output"
	"go.trai.ch/zerr"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [bases...]",
		Short: "Build and publish packages",
		Long:  "Build and publish the given package bases, or every package of the catalog when none is given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			packager, _ := cmd.Flags().GetString("packager")
			bumpPkgrel, _ := cmd.Flags().GetBool("bump-pkgrel")
			refresh, _ := cmd.Flags().GetBool("refresh")
			workers, _ := cmd.Flags().GetStringArray("worker")
			rawPatches, _ := cmd.Flags().GetStringArray("patch")

			patches, err := parsePatches(rawPatches)
			if err != nil {
				return err
			}

			result, err := c.app.Update(cmd.Context(), args, app.UpdateOptions{
				UpdateOptions: domain.UpdateOptions{
					Packager:   packager,
					BumpPkgrel: bumpPkgrel,
					Patches:    patches,
					Refresh:    refresh,
				},
				Workers: workers,
			})
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, pkg := range result.Success() {
				_ = output.Success(out, pkg.Base+" "+pkg.Version)
			}
			failed := result.Failed()
			for _, pkg := range failed {
				_ = output.Failure(out, pkg.Base+" "+pkg.Version)
			}
			// partial failure is reported above, only a run without any update fails
			if len(failed) > 0 && len(result.Success()) == 0 {
				return zerr.With(zerr.Wrap(domain.ErrPackagesFailed, "update finished with failures"), "packages", domain.Bases(failed))
			}
			return nil
		},
	}
	cmd.Flags().String("packager", "", "Packager recorded in the built packages")
	cmd.Flags().Bool("bump-pkgrel", false, "Increment pkgrel when the version did not change")
	cmd.Flags().Bool("refresh", false, "Refresh the package databases before building")
	cmd.Flags().StringArrayP("worker", "w", nil, "Build on the given worker address (repeatable)")
	cmd.Flags().StringArray("patch", nil, "Override a PKGBUILD variable, as KEY=VALUE (repeatable)")
	return cmd
}

func parsePatches(raw []string) ([]domain.Patch, error) {
	patches := make([]domain.Patch, 0, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "patch must be KEY=VALUE"), "patch", item)
		}
		patches = append(patches, domain.Patch{Key: strings.TrimSpace(key), Value: value})
	}
	return patches, nil
}
