package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hubforge/hubctl/pkg/api"
	"github.com/hubforge/hubctl/pkg/output"
	"github.com/hubforge/hubctl/pkg/selection"
)

func newDevicesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List devices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listDevices(cmd.Context(), c)
		},
	}

	cmd.AddCommand(newDevicesSelectCmd(c))

	return cmd
}

func listDevices(ctx context.Context, c *cli) error {
	devices, err := c.client.Devices(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(devices))
	for _, device := range devices {
		rows = append(rows, []string{device.DisplayName(), device.DeviceID, device.LocationID})
	}
	return output.Table([]string{"Name", "Device ID", "Location ID"}, rows)
}

func newDevicesSelectCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [device-id]",
		Short: "Pick a device, remembering the choice as the profile default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preselected := ""
			if len(args) > 0 {
				preselected = args[0]
			}
			return selectDevice(cmd.Context(), c, preselected)
		},
	}

	return cmd
}

func selectDevice(ctx context.Context, c *cli, preselected string) error {
	id, err := selection.SelectFromList(ctx, c.config, c.ui, selection.Config[api.Device, string]{
		ItemName:      "device",
		PrimaryKey:    func(d api.Device) string { return d.DeviceID },
		SortKey:       func(d api.Device) string { return d.DisplayName() },
		ListItems:     c.client.Devices,
		PreselectedID: preselected,
		Default: &selection.DefaultValue[api.Device, string]{
			ConfigKey: "defaultDevice",
			GetItem: func(ctx context.Context, id string) (api.Device, error) {
				return c.client.Device(ctx, id)
			},
			UserMessage: func(d api.Device) string {
				return fmt.Sprintf("Using default device %q (%s).", d.DisplayName(), d.DeviceID)
			},
		},
	})
	if err != nil {
		return err
	}

	device, err := c.client.Device(ctx, id)
	if err != nil {
		return err
	}

	rendered, err := output.JSON(c.indent)(device)
	if err != nil {
		return err
	}
	pterm.Println(rendered)
	return nil
}
