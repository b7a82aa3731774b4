package mockapi

import "github.com/emiliopalmerini/genex/internal/domain"

// catalog is the fixed search result served for every query.
var catalog = []domain.Dataset{
	{ID: "GSE123456", Title: "Breast Cancer Study", Organism: "Homo sapiens", Samples: 50},
	{ID: "GSE789012", Title: "Lung Cancer Analysis", Organism: "Homo sapiens", Samples: 40},
}

var details = map[string]domain.DatasetDetail{
	"GSE123456": {
		Title:    "Breast Cancer Study",
		Summary:  "Expression profiling of tumour and adjacent normal breast tissue.",
		Samples:  50,
		Platform: "GPL570",
	},
	"GSE789012": {
		Title:    "Lung Cancer Analysis",
		Summary:  "Expression profiling of non-small cell lung carcinoma samples.",
		Samples:  40,
		Platform: "GPL96",
	},
}
