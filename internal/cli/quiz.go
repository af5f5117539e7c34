package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(quizCmd)
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the climate knowledge evaluation",
	Long:  `Run the interactive five-question climate quiz. Each correct answer earns 30 engagement points.`,
	RunE:  runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	view := session.StartQuiz()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("\nQuestion %d/%d: %s\n", view.Index+1, view.Total, view.Question)
		for i, opt := range view.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		selected := readSelection(scanner, len(view.Options))
		ans, err := session.AnswerCurrentQuestion(selected)
		if err != nil {
			return err
		}

		if ans.Correct {
			fmt.Printf("Correct! +%d points\n", ans.PointsDelta)
		} else {
			fmt.Printf("Not quite — the answer was %d) %s\n",
				ans.CorrectIndex+1, view.Options[ans.CorrectIndex])
		}
		fmt.Println(ans.Explanation)

		adv, err := session.AdvanceQuiz()
		if err != nil {
			return err
		}
		if adv.Completed {
			final := adv.Final
			fmt.Printf("\nEvaluation complete: %d/%d correct (%d%%)\n",
				final.CorrectCount, final.QuestionCount, final.ScorePercent)
			fmt.Println(final.Analysis)
			fmt.Println(final.Recommendation)
			printUnlocks(final.NewAchievements)
			return nil
		}
		view = adv.Next
	}
}

// readSelection prompts until the user enters a number in [1, n].
func readSelection(scanner *bufio.Scanner, n int) int {
	for {
		fmt.Printf("Your answer (1-%d): ", n)
		if !scanner.Scan() {
			return 0
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && v >= 1 && v <= n {
			return v - 1
		}
		fmt.Println("Please enter a valid option number.")
	}
}
