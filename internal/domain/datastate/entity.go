package datastate

// Active is the only state this service ever creates on its own. Every user,
// project and attendance entry written by the ingestion engine references it.
const Active = "Active"

// State is a row of the lifecycle-state reference table. Rows are created
// lazily and never updated or deleted.
type State struct {
	ID   string
	Name string
}
