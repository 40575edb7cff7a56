package domain

import "encoding/json"

// MinutesPerStop is the flat travel estimate of the stub optimizer
const MinutesPerStop = 30

// Route is the fixed-shape result of the route optimizer. Start, waypoints
// and end are echoed back exactly as the caller sent them.
type Route struct {
	Start                json.RawMessage `json:"start"`
	Waypoints            json.RawMessage `json:"waypoints"`
	End                  json.RawMessage `json:"end"`
	TotalStops           int             `json:"total_stops"`
	EstimatedTimeMinutes int             `json:"estimated_time_minutes"`
	Optimized            bool            `json:"optimized"`
	RouteEfficiency      string          `json:"route_efficiency"`
}

// OptimizeRoute computes the stub route plan: one stop per waypoint plus the
// end stop, at a flat 30 minutes per stop. It is a pure function of its
// input and deliberately does no graph search or distance math.
func OptimizeRoute(start, waypoints, end json.RawMessage) (*Route, error) {
	// json.Unmarshal accepts null for a slice target, so reject it explicitly
	var stops []json.RawMessage
	if err := json.Unmarshal(waypoints, &stops); err != nil || stops == nil {
		return nil, ErrWaypointsNotList
	}

	totalStops := len(stops) + 1 // waypoints + end
	return &Route{
		Start:                start,
		Waypoints:            waypoints,
		End:                  end,
		TotalStops:           totalStops,
		EstimatedTimeMinutes: totalStops * MinutesPerStop,
		Optimized:            true,
		RouteEfficiency:      "optimal",
	}, nil
}
