package internal

// SourceName identifies one of the product data sources consulted during
// consolidation. The constant order (database, excel, catalogue) is also
// the collection order the orchestrator uses.
type SourceName string

const (
	SourceDatabase  SourceName = "database"
	SourceExcel     SourceName = "excel"
	SourceCatalogue SourceName = "catalogue"
)

// AllSources lists every source in collection order.
var AllSources = []SourceName{SourceDatabase, SourceExcel, SourceCatalogue}

// Field is one of the logical product fields tracked by consolidation.
type Field string

const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldPrice          Field = "price"
	FieldCost           Field = "cost"
	FieldInventory      Field = "inventory"
	FieldSpecifications Field = "specifications"
	FieldCategory       Field = "category"
	FieldManufacturer   Field = "manufacturer"
)

// AllFields lists the tracked fields in extraction order.
var AllFields = []Field{
	FieldName,
	FieldDescription,
	FieldPrice,
	FieldCost,
	FieldInventory,
	FieldSpecifications,
	FieldCategory,
	FieldManufacturer,
}

// Recommendation labels a consolidated record for the reviewing collaborator.
type Recommendation string

const (
	RecommendationHighConfidence   Recommendation = "HIGH_CONFIDENCE"
	RecommendationMediumConfidence Recommendation = "MEDIUM_CONFIDENCE"
	RecommendationHighConflicts    Recommendation = "HIGH_CONFLICTS"
	RecommendationLowDataCoverage  Recommendation = "LOW_DATA_COVERAGE"
	RecommendationLowConfidence    Recommendation = "LOW_CONFIDENCE"
)

// SourcePayload is one source's raw view of a product. Shape is
// source-dependent: flat for excel/catalogue snapshots, with a nested
// product_data mapping for database-origin records.
type SourcePayload map[string]any

// ConflictRecord documents a field where two or more sources disagreed.
type ConflictRecord struct {
	Field             Field              `json:"field"`
	ChosenSource      SourceName         `json:"chosen_source"`
	ChosenValue       any                `json:"chosen_value"`
	ConflictingValues map[SourceName]any `json:"conflicting_values"`
	ResolutionMethod  string             `json:"resolution_method,omitempty"`
}

// ConsolidatedRecord is the orchestrator's output for one SKU. Immutable
// once returned; re-running consolidation produces a fresh record.
type ConsolidatedRecord struct {
	SKU                string                       `json:"sku"`
	ConsolidationDate  string                       `json:"consolidation_date"`
	SourcesChecked     []SourceName                 `json:"sources_checked"`
	DataFound          map[SourceName]SourcePayload `json:"data_found"`
	ConsolidatedData   map[Field]any                `json:"consolidated_data"`
	Conflicts          []ConflictRecord             `json:"conflicts"`
	ConfidenceScore    float64                      `json:"confidence_score"`
	CompletenessScore  float64                      `json:"completeness_score"`
	AIDescriptionReady bool                         `json:"ai_description_ready"`
	AIDescriptionData  map[string]any               `json:"ai_description_data,omitempty"`
	Recommendation     Recommendation               `json:"recommendation"`
}

// LocatorResult is the Product Locator's view of one SKU in the database.
type LocatorResult struct {
	Found        bool           `json:"found"`
	Record       map[string]any `json:"record"`
	Completeness float64        `json:"completeness"`
	SourceTables []string       `json:"source_tables"`
}

// BatchItem is the per-SKU outcome of a batch consolidation.
type BatchItem struct {
	SKU            string              `json:"sku"`
	Status         string              `json:"status"`
	Error          string              `json:"error,omitempty"`
	Confidence     float64             `json:"confidence"`
	Completeness   float64             `json:"completeness"`
	Recommendation Recommendation      `json:"recommendation,omitempty"`
	Conflicts      int                 `json:"conflicts"`
	Record         *ConsolidatedRecord `json:"-"`
}

// BatchSummary aggregates a batch run for the reviewing collaborator.
type BatchSummary struct {
	TotalProcessed int         `json:"total_processed"`
	Successful     int         `json:"successful"`
	Failed         int         `json:"failed"`
	HighConfidence int         `json:"high_confidence"`
	NeedsReview    int         `json:"needs_review"`
	Items          []BatchItem `json:"items"`
}
