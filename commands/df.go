package commands

import (
	"fmt"
	"text/tabwriter"
)

// Df implements the df built-in: report storage totals from the
// adapter's quota accounting.
func Df(inv *Invocation) error {
	used, quota, err := inv.FS.Usage()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(inv.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Filesystem\tSize\tUsed\tAvail\tUse%")

	if quota <= 0 {
		fmt.Fprintf(tw, "/\t-\t%s\t-\t-\n", BytesToHuman(used))
		return tw.Flush()
	}

	free := quota - used
	if free < 0 {
		free = 0
	}
	fmt.Fprintf(tw, "/\t%s\t%s\t%s\t%d%%\n",
		BytesToHuman(quota),
		BytesToHuman(used),
		BytesToHuman(free),
		used*100/quota)
	return tw.Flush()
}

func init() {
	mustRegister(&Command{
		Name:  "df",
		Use:   "df",
		Short: "Display free storage space.",
		Run:   Df,
	})
}
