package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle PRACTICE",
	Short: "Activate or deactivate a sustainable practice",
	Long:  `Toggle a practice by its id (see 'ecotrack practices'). Toggling twice restores the previous state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := session.TogglePractice(args[0])
	if err != nil && !errors.Is(err, domain.ErrPersistenceWrite) {
		return err
	}

	state := "deactivated"
	if res.Completed {
		state = "activated"
	}
	fmt.Printf("%s %s (%+.1f kg CO2/day, %+d points)\n",
		res.Title, state, res.CO2Delta, res.PointsDelta)

	printUnlocks(res.NewAchievements)

	if err != nil {
		fmt.Println("warning: progress could not be saved to disk")
	}
	return nil
}

func printUnlocks(defs []domain.AchievementDef) {
	for _, def := range defs {
		fmt.Printf("%s Achievement unlocked: %s — %s\n", def.Icon, def.Title, def.Description)
	}
}
