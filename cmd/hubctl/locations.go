package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hubforge/hubctl/pkg/api"
	"github.com/hubforge/hubctl/pkg/iteminput"
	"github.com/hubforge/hubctl/pkg/output"
	"github.com/hubforge/hubctl/pkg/selection"
	"github.com/hubforge/hubctl/pkg/validation"
	"github.com/hubforge/hubctl/pkg/wizard"
)

func newLocationsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listLocations(cmd.Context(), c)
		},
	}

	cmd.AddCommand(newLocationsCreateCmd(c))
	cmd.AddCommand(newLocationsRoomsCmd(c))

	return cmd
}

func listLocations(ctx context.Context, c *cli) error {
	locations, err := c.client.Locations(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(locations))
	for _, location := range locations {
		rows = append(rows, []string{location.Name, location.LocationID, location.CountryCode})
	}
	return output.Table([]string{"Name", "Location ID", "Country"}, rows)
}

func newLocationsCreateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a location interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return createLocation(cmd.Context(), c)
		},
	}

	return cmd
}

func createLocation(ctx context.Context, c *cli) error {
	value, err := wizard.CreateFromUserInput(locationDefinition(), wizard.Options{
		UI:     c.ui,
		Config: c.config,
		DryRun: c.dryRun,
		Indent: c.indent,
	})
	if err != nil {
		return err
	}

	if c.dryRun {
		rendered, err := output.JSON(c.indent)(value)
		if err != nil {
			return err
		}
		pterm.Println(rendered)
		return nil
	}

	location, err := c.client.CreateLocation(ctx, value)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Created location %q (%s).", location.Name, location.LocationID)
	return nil
}

func newLocationsRoomsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms [location-id]",
		Short: "List the rooms of a location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preselected := ""
			if len(args) > 0 {
				preselected = args[0]
			}
			return listRooms(cmd.Context(), c, preselected)
		},
	}
}

// listRooms resolves the location first: an explicit id wins, then the
// remembered default, then an interactive pick (chosen automatically when
// only one location exists).
func listRooms(ctx context.Context, c *cli, preselected string) error {
	locationID, err := selection.SelectFromList(ctx, c.config, c.ui, selection.Config[api.Location, string]{
		ItemName:      "location",
		PrimaryKey:    func(l api.Location) string { return l.LocationID },
		SortKey:       func(l api.Location) string { return l.Name },
		ListItems:     c.client.Locations,
		PreselectedID: preselected,
		AutoChoose:    true,
		Default: &selection.DefaultValue[api.Location, string]{
			ConfigKey: "defaultLocation",
			GetItem: func(ctx context.Context, id string) (api.Location, error) {
				return c.client.Location(ctx, id)
			},
			UserMessage: func(l api.Location) string {
				return fmt.Sprintf("Using default location %q (%s).", l.Name, l.LocationID)
			},
		},
	})
	if err != nil {
		return err
	}

	rooms, err := c.client.Rooms(ctx, locationID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, []string{room.Name, room.RoomID})
	}
	return output.Table([]string{"Name", "Room ID"}, rows)
}

// locationDefinition builds the interactive recipe for a location create
// request.
func locationDefinition() iteminput.Definition[map[string]any] {
	coordinates := iteminput.Object("Coordinates", []iteminput.Property{
		{Key: "latitude", Definition: iteminput.ToAny(iteminput.Number("Latitude", &iteminput.NumberOptions{
			Min: ptr(-90.0), Max: ptr(90.0),
		}))},
		{Key: "longitude", Definition: iteminput.ToAny(iteminput.Number("Longitude", &iteminput.NumberOptions{
			Min: ptr(-180.0), Max: ptr(180.0),
		}))},
	}, nil)

	return iteminput.Object("Location", []iteminput.Property{
		{Key: "name", Definition: iteminput.ToAny(iteminput.String("Location name", &iteminput.StringOptions{
			Validate: validation.All(validation.Required(), validation.MaxLength(40)),
			Help:     "A display name for the location, up to 40 characters.",
		}))},
		{Key: "countryCode", Definition: iteminput.ToAny(iteminput.ListSelection("Country", []iteminput.Choice[string]{
			{Name: "United States", Value: "USA"},
			{Name: "United Kingdom", Value: "GBR"},
			{Name: "Germany", Value: "DEU"},
			{Name: "Sweden", Value: "SWE"},
			{Name: "Australia", Value: "AUS"},
		}, nil))},
		{Key: "temperatureScale", Definition: iteminput.ToAny(iteminput.ListSelection("Temperature scale", []iteminput.Choice[string]{
			{Name: "Celsius", Value: "C"},
			{Name: "Fahrenheit", Value: "F"},
		}, nil))},
		{Key: "coordinates", Definition: iteminput.ToAny(coordinates)},
	}, &iteminput.ObjectOptions{
		ValidateFinal: func(value map[string]any) error {
			if name, _ := value["name"].(string); name == "" {
				return fmt.Errorf("a location needs a name before it can be created")
			}
			return nil
		},
	})
}

func ptr[T any](v T) *T {
	return &v
}
