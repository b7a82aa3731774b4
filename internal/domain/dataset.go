package domain

// Dataset is a gene-expression dataset summary as returned by a search.
// Two datasets are the same dataset when their IDs match.
type Dataset struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Organism string `json:"organism"`
	Samples  int    `json:"samples"`
}

// DatasetDetail holds the extended metadata of a single dataset.
type DatasetDetail struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Samples  int    `json:"samples"`
	Platform string `json:"platform"`
}

// AnalysisQuery scopes an expression analysis or health prediction to one
// gene within one dataset.
type AnalysisQuery struct {
	GeneID    string `json:"gene_id"`
	DatasetID string `json:"dataset_id"`
}
