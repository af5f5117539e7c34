package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/app/footprint"
)

func init() {
	footprintCmd.Flags().Float64Var(&fpCarKm, "car-km", 0, "Car kilometers per week")
	footprintCmd.Flags().StringVar(&fpTransport, "transport", "gasoline", "Vehicle type: gasoline, diesel, hybrid, electric")
	footprintCmd.Flags().Float64Var(&fpFlights, "flights", 0, "Flights per year")
	footprintCmd.Flags().Float64Var(&fpElectricity, "electricity", 0, "Electricity kWh per month")
	footprintCmd.Flags().Float64Var(&fpGas, "gas", 0, "Natural gas m3 per month")
	footprintCmd.Flags().Float64Var(&fpWater, "water", 0, "Water litres per day")
	footprintCmd.Flags().Float64Var(&fpMeat, "meat-meals", 0, "Meat meals per week")
	footprintCmd.Flags().Float64Var(&fpLocalFood, "local-food", 0, "Local food percentage (0-100)")
	footprintCmd.Flags().StringVar(&fpRecycling, "recycling", "always", "Recycling habit: always, sometimes, rarely, never")
	rootCmd.AddCommand(footprintCmd)
}

var (
	fpCarKm       float64
	fpTransport   string
	fpFlights     float64
	fpElectricity float64
	fpGas         float64
	fpWater       float64
	fpMeat        float64
	fpLocalFood   float64
	fpRecycling   string
)

var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Estimate your annual carbon footprint",
	Long:  `Compute an annualized CO2 estimate from lifestyle inputs, with a per-category breakdown and ranked reduction strategies.`,
	RunE:  runFootprint,
}

func runFootprint(cmd *cobra.Command, args []string) error {
	session, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	res := session.SubmitFootprintCalculation(footprint.Input{
		CarKmPerWeek:     fpCarKm,
		Transport:        footprint.TransportMode(fpTransport),
		FlightsPerYear:   fpFlights,
		ElectricityKWh:   fpElectricity,
		GasM3:            fpGas,
		WaterLitres:      fpWater,
		MeatMealsPerWeek: fpMeat,
		LocalFoodPct:     fpLocalFood,
		Recycling:        footprint.RecyclingHabit(fpRecycling),
	})

	for _, warn := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warn.Field, warn.Message)
	}

	fmt.Printf("Annual footprint: %.0f kg CO2 (%s)\n", res.TotalKg, res.Band)
	fmt.Println(res.Analysis)
	fmt.Printf("Urgency: %s\n\n", res.UrgencyLevel)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tKG CO2/YEAR")
	fmt.Fprintf(w, "transport\t%.0f\n", res.Breakdown.Transport)
	fmt.Fprintf(w, "aviation\t%.0f\n", res.Breakdown.Aviation)
	fmt.Fprintf(w, "electricity\t%.0f\n", res.Breakdown.Electricity)
	fmt.Fprintf(w, "gas\t%.0f\n", res.Breakdown.Gas)
	fmt.Fprintf(w, "water\t%.0f\n", res.Breakdown.Water)
	fmt.Fprintf(w, "nutrition\t%.0f\n", res.Breakdown.Nutrition)
	fmt.Fprintf(w, "waste\t%.0f\n", res.Breakdown.Waste)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nRecommendations:")
	for _, rec := range res.Recommendations {
		fmt.Printf("  [P%d] %s\n       %s\n", rec.Priority, rec.Title, rec.Action)
		if rec.PotentialKg > 0 {
			fmt.Printf("       potential: -%.0f kg/year\n", rec.PotentialKg)
		}
	}
	return nil
}
