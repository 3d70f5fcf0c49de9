package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/agiangrant/aperture"
)

func newProbeCmd(a *app) *cobra.Command {
	var appIDs []uint

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Initialize Steam and report ISteamApps state",
		Long: `probe loads steam_api, calls SteamAPI_Init, queries every ISteamApps
method and shuts Steam down again. The Steam client must be running and
the working directory must contain steam_appid.txt for init to succeed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := toAppIDs(appIDs)
			if err != nil {
				return err
			}

			client, err := aperture.Init(aperture.WithConfig(a.cfg), aperture.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer client.Close()

			r, err := collectReport(client, ids)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderReport(r, styled(out)))
			return nil
		},
	}

	cmd.Flags().UintSliceVar(&appIDs, "app-id", nil, "app or DLC ids to check (repeatable)")
	return cmd
}

func toAppIDs(in []uint) ([]uint32, error) {
	ids := make([]uint32, 0, len(in))
	for _, id := range in {
		if id > math.MaxUint32 {
			return nil, fmt.Errorf("app id %d out of range", id)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

// collectReport queries each ISteamApps method once. The first error stops
// collection.
func collectReport(client *aperture.Client, ids []uint32) (report, error) {
	r := report{
		Diagnostics:  client.Diagnostics(),
		SteamRunning: client.IsSteamRunning(),
	}

	apps, err := client.Apps()
	if err != nil {
		return r, err
	}

	var firstErr error
	check := func(v bool, err error) bool {
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}

	r.Subscribed = check(apps.IsSubscribed())
	r.LowViolence = check(apps.IsLowViolence())
	r.FamilySharing = check(apps.IsSubscribedFromFamilySharing())
	r.FreeWeekend = check(apps.IsSubscribedFromFreeWeekend())
	r.VACBanned = check(apps.IsVACBanned())

	count, err := apps.DLCCount()
	if err != nil && firstErr == nil {
		firstErr = err
	}
	r.DLCCount = count

	for _, id := range ids {
		r.Apps = append(r.Apps, appStatus{
			ID:           id,
			Subscribed:   check(apps.IsSubscribedApp(id)),
			DLCInstalled: check(apps.IsDLCInstalled(id)),
		})
	}

	return r, firstErr
}
