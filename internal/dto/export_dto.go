package dto

// ExportRequest selects an arbitrary subset of a listing for export.
// An empty id list exports the whole (filtered) listing.
type ExportRequest struct {
	IDs []uint `json:"ids"`
}
