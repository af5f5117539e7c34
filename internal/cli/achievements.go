package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement badges and progress toward them",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	sum := session.Progress()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tSTATUS\tPROGRESS")
	for _, st := range sum.Achievements {
		status := "locked"
		if st.Unlocked {
			status = "unlocked"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", st.Def.Icon, st.Def.Title, status, st.Requirement)
	}
	return w.Flush()
}
