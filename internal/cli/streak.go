package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak DAYS",
	Short: "Set the consecutive-days activity streak",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	days, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day count %q", args[0])
	}

	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := session.SetStreakDays(days); err != nil {
		if errors.Is(err, domain.ErrPersistenceWrite) {
			fmt.Println("warning: progress could not be saved to disk")
			return nil
		}
		return err
	}

	fmt.Printf("Streak set to %d days\n", days)
	return nil
}
