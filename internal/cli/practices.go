package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/infra/catalog"
)

func init() {
	rootCmd.AddCommand(practicesCmd)
}

var practicesCmd = &cobra.Command{
	Use:     "practices",
	Aliases: []string{"ls"},
	Short:   "List the sustainable-practice catalog",
	RunE:    runPractices,
}

func runPractices(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	sum := session.Progress()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCO2 KG/DAY\tACTIVE")
	for _, pr := range catalog.Practices {
		active := ""
		if sum.Progress.HasPractice(pr.ID) {
			active = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", pr.ID, pr.Title, pr.CO2Reduction, active)
	}
	return w.Flush()
}
