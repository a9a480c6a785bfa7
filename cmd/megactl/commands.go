package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"megaraid-exporter/internal/collector"
	"megaraid-exporter/pkg/megacli"
)

type cliOptions struct {
	cliPath string
	jsonOut bool
}

func (o *cliOptions) client() (*megacli.Client, error) {
	return megacli.New(o.cliPath)
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "megactl",
		Short:         "Query and manage MegaRAID controllers through MegaCli",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.cliPath, "cli-path", "", "path to the MegaCli binary (probes PATH when empty)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print raw records as JSON")

	root.AddCommand(
		newAdaptersCommand(opts),
		newEnclosuresCommand(opts),
		newLDCommand(opts),
		newPDCommand(opts),
		newBBUCommand(opts),
		newVersionCommand(opts),
	)
	return root
}

func newAdaptersCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List MegaRAID adapters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			records, err := client.Adapters(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(records)
			}

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "ID\tPRODUCT\tSERIAL\tFIRMWARE\tMEMORY\tVDS\tPDS")
			for _, r := range records {
				a := collector.AdapterFromRecord(r)
				fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%d\t%d\n",
					a.ID, a.ProductName, a.SerialNo, a.FirmwareVersion,
					formatBytes(a.MemorySizeBytes), a.VirtualDrives, a.PhysicalDevices)
			}
			return table.Flush()
		},
	}
}

func newEnclosuresCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enclosures",
		Short: "List drive enclosures",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			records, err := client.Enclosures(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(records)
			}

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "ADAPTER\tENCLOSURE\tSLOTS\tDRIVES\tSTATUS")
			for _, r := range records {
				e := collector.EnclosureFromRecord(r)
				fmt.Fprintf(table, "%d\t%d\t%d\t%d\t%s\n",
					e.AdapterID, e.ID, e.NumberOfSlots, e.NumberOfDrives, e.Status)
			}
			return table.Flush()
		},
	}
}

func newLDCommand(opts *cliOptions) *cobra.Command {
	ld := &cobra.Command{
		Use:   "ld",
		Short: "Manage logical drives",
	}
	ld.AddCommand(
		newLDListCommand(opts),
		newLDCreateCommand(opts),
		newLDRemoveCommand(opts),
	)
	return ld
}

func newLDListCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured logical drives",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			records, err := client.LogicalDrives(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(records)
			}

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "ADAPTER\tDRIVE\tRAID\tSTATE\tSIZE\tDISKS")
			for _, r := range records {
				ld := collector.LogicalDriveFromRecord(r)
				level := "-"
				if ld.RaidLevel >= 0 {
					level = strconv.FormatInt(ld.RaidLevel, 10)
				}
				fmt.Fprintf(table, "%d\t%d\t%s\t%s\t%s\t%d\n",
					ld.AdapterID, ld.ID, level, ld.State, formatBytes(ld.SizeBytes), ld.NumDrives)
			}
			return table.Flush()
		},
	}
}

func newLDCreateCommand(opts *cliOptions) *cobra.Command {
	var create megacli.CreateOptions
	var cachedBadBBU bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a logical drive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("cached-bad-bbu") {
				create.CachedBadBBU = &cachedBadBBU
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			lines, err := client.CreateLogicalDrive(cmd.Context(), create)
			if err != nil {
				return err
			}
			printLines(lines)
			return nil
		},
	}

	cmd.Flags().IntVar(&create.RaidLevel, "raid-level", 0, "RAID level (0, 1, 5 or 6)")
	cmd.Flags().StringSliceVar(&create.Devices, "device", nil, "enclosure:slot pair, repeatable (e.g. E0:S0)")
	cmd.Flags().IntVar(&create.Adapter, "adapter", 0, "adapter number")
	cmd.Flags().StringVar(&create.WritePolicy, "write-policy", "", "write policy (WT or WB)")
	cmd.Flags().StringVar(&create.ReadPolicy, "read-policy", "", "read policy (NORA, RA or ADRA)")
	cmd.Flags().StringVar(&create.CachePolicy, "cache-policy", "", "cache policy (Direct or Cached)")
	cmd.Flags().BoolVar(&cachedBadBBU, "cached-bad-bbu", false, "use write cache while the BBU is bad")
	cmd.Flags().IntVar(&create.SizeMB, "size-mb", 0, "capacity in MB (controller default when 0)")
	cmd.Flags().IntVar(&create.StripeSize, "stripe-size", 0, "stripe size in KB (8..1024, powers of two)")
	cmd.Flags().StringSliceVar(&create.HotSpares, "hot-spare", nil, "hot spare enclosure:slot pair, repeatable")
	cmd.Flags().StringVar(&create.AfterLD, "after-ld", "", "free slot to use")
	cmd.Flags().BoolVar(&create.Force, "force", false, "force creation")
	cmd.MarkFlagRequired("device")

	return cmd
}

func newLDRemoveCommand(opts *cliOptions) *cobra.Command {
	var remove megacli.RemoveOptions

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a logical drive",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			lines, err := client.RemoveLogicalDrive(cmd.Context(), remove)
			if err != nil {
				return err
			}
			printLines(lines)
			return nil
		},
	}

	cmd.Flags().IntVar(&remove.Target, "target", 0, "logical drive number to delete")
	cmd.Flags().IntVar(&remove.Adapter, "adapter", 0, "adapter number")
	cmd.Flags().BoolVar(&remove.Force, "force", false, "force removal")
	cmd.MarkFlagRequired("target")

	return cmd
}

func newPDCommand(opts *cliOptions) *cobra.Command {
	pd := &cobra.Command{
		Use:   "pd",
		Short: "Inspect physical drives",
	}
	pd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed physical drives",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			records, err := client.PhysicalDrives(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(records)
			}

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "ADAPTER\tENC\tSLOT\tMODEL\tSTATE\tSIZE\tTEMP\tMEDIA ERRS")
			for _, r := range records {
				pd := collector.PhysicalDriveFromRecord(r)
				fmt.Fprintf(table, "%d\t%d\t%d\t%s\t%s\t%s\t%d\t%d\n",
					pd.AdapterID, pd.EnclosureID, pd.Slot, pd.Model, pd.FirmwareState,
					formatBytes(pd.SizeBytes), pd.Temperature, pd.MediaErrors)
			}
			return table.Flush()
		},
	})
	return pd
}

func newBBUCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bbu",
		Short: "List battery backup units",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			records, err := client.BatteryBackupUnits(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(records)
			}

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "ADAPTER\tTYPE\tSTATE\tVOLTAGE\tTEMP\tCHARGE")
			for _, r := range records {
				bbu := collector.BatteryFromRecord(r)
				fmt.Fprintf(table, "%d\t%s\t%s\t%dmV\t%d\t%d%%\n",
					bbu.AdapterID, bbu.BatteryType, bbu.State,
					bbu.VoltageMV, bbu.Temperature, bbu.RelativeCharge)
			}
			return table.Flush()
		},
	}
}

func newVersionCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show megactl and MegaCli versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("megactl v%s (%s)\n", version, commit)

			client, err := opts.client()
			if err != nil {
				return err
			}
			toolVersion, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(toolVersion)
			return nil
		},
	}
}
