package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/tour-catalog-service/internal/catalog"
	"github.com/fairyhunter13/tour-catalog-service/internal/listing"
	"github.com/fairyhunter13/tour-catalog-service/internal/query"
)

type queryOptions struct {
	catalog      string
	tourType     string
	event        string
	length       string
	minGuests    int
	maxGuests    int
	destinations []string
	transport    []string
	skus         []string
	active       string
	sort         string
	top          int
	cards        bool
}

var queryFlags queryOptions

// queryCmd evaluates a listing query against a catalog file offline and
// prints the result as JSON. Flags use the same names and values as the
// /tours query parameters.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter and sort a catalog file and print the listing as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := queryFlags
		if f.catalog == "" {
			return fmt.Errorf("--catalog is required")
		}
		tours, err := catalog.LoadFile(f.catalog)
		if err != nil {
			return err
		}

		v := url.Values{}
		set := func(k, val string) {
			if val != "" {
				v.Set(k, val)
			}
		}
		set("type", f.tourType)
		set("event", f.event)
		set("length", f.length)
		set("active", f.active)
		set("sort", f.sort)
		if f.minGuests != 0 {
			v.Set("minGuests", strconv.Itoa(f.minGuests))
		}
		if f.maxGuests != 0 {
			v.Set("maxGuests", strconv.Itoa(f.maxGuests))
		}
		if f.top != 0 {
			v.Set("top", strconv.Itoa(f.top))
		}
		v["destination"] = f.destinations
		v["transport"] = f.transport
		v["sku"] = f.skus

		spec, err := query.ParseValues(v)
		if err != nil {
			return err
		}
		result := query.Run(tours, spec)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		out := map[string]any{"count": len(result), "label": listing.CountLabel(len(result))}
		if f.cards {
			out["cards"] = listing.Cards(result, true)
		} else {
			out["tours"] = result
		}
		return enc.Encode(out)
	},
}

func init() {
	fl := queryCmd.Flags()
	fl.StringVar(&queryFlags.catalog, "catalog", "", "catalog file (.yaml, .yml or .json)")
	fl.StringVar(&queryFlags.tourType, "type", "", "tour type: private, shared, self-guided, custom or all")
	fl.StringVar(&queryFlags.event, "event", "", "special event key")
	fl.StringVar(&queryFlags.length, "length", "", "duration bucket: short, half, full or all")
	fl.IntVar(&queryFlags.minGuests, "min-guests", 0, "party size lower bound")
	fl.IntVar(&queryFlags.maxGuests, "max-guests", 0, "party size upper bound")
	fl.StringSliceVar(&queryFlags.destinations, "destination", nil, "destinations, any of which must match")
	fl.StringSliceVar(&queryFlags.transport, "transport", nil, "transport modes, any of which must match")
	fl.StringSliceVar(&queryFlags.skus, "sku", nil, "restrict to these skus")
	fl.StringVar(&queryFlags.active, "active", "", "true, false or all")
	fl.StringVar(&queryFlags.sort, "sort", "featured", "sort mode")
	fl.IntVar(&queryFlags.top, "top", 0, "keep only the first n results")
	fl.BoolVar(&queryFlags.cards, "cards", false, "print listing cards instead of tours")
}
