package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your sustainability progress",
	RunE:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	sum := session.Progress()
	p := sum.Progress

	fmt.Println(sum.AdoptionMessage)
	fmt.Printf("CO2 avoided:       %.1f kg/day\n", p.TotalCO2Reduced)
	fmt.Printf("Engagement points: %d\n", p.TotalEngagementPoints)
	fmt.Printf("Streak:            %d days\n", p.StreakDays)
	if p.EvaluationScore != nil {
		fmt.Printf("Last evaluation:   %d%% (%d completed)\n",
			*p.EvaluationScore, p.CompletedEvaluations)
	} else {
		fmt.Println("Last evaluation:   not taken yet")
	}

	unlocked := 0
	for _, st := range sum.Achievements {
		if st.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("Achievements:      %d/%d unlocked\n", unlocked, len(sum.Achievements))
	return nil
}
