package models

// FlowKind is the reservation workflow state. A single enum replaces the
// three independent "which sub-view is open" flags of the browser front end,
// so two conflicting sub-views can never be active at once.
type FlowKind string

const (
	FlowIdle                  FlowKind = "idle"
	FlowCreatingForRestaurant FlowKind = "creating_for_restaurant"
	FlowCreatingGeneric       FlowKind = "creating_generic"
	FlowModifying             FlowKind = "modifying"
)

type FlowState struct {
	Kind          FlowKind `json:"kind"`
	RestaurantID  uint     `json:"restaurant_id,omitempty"`
	ReservationID uint     `json:"reservation_id,omitempty"`
}

func IdleFlow() FlowState {
	return FlowState{Kind: FlowIdle}
}
