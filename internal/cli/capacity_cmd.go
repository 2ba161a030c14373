package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// weekOffsetFlag is a pflag.Value that only accepts offsets inside the
// capacity horizon, so bad input fails at parse time with a clear message.
type weekOffsetFlag int

var _ pflag.Value = (*weekOffsetFlag)(nil)

func (w *weekOffsetFlag) String() string {
	return strconv.Itoa(int(*w))
}

func (w *weekOffsetFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("week offset must be a number")
	}
	if n < 0 || n > contract.MaxWeekOffset {
		return fmt.Errorf("week offset must be between 0 and %d", contract.MaxWeekOffset)
	}
	*w = weekOffsetFlag(n)
	return nil
}

func (w *weekOffsetFlag) Type() string {
	return "week"
}

func newCapacityCmd(app *App) *cobra.Command {
	var week weekOffsetFlag

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show weekly team capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Capacity.GetCapacity(context.Background(), contract.CapacityRequest{
				WeekOffset: int(week),
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCapacity(resp))
			return nil
		},
	}

	cmd.Flags().Var(&week, "week", fmt.Sprintf("Week offset from the current week (0-%d)", contract.MaxWeekOffset))

	return cmd
}
