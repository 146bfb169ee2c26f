// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import "encoding/json"

type biospecimen struct {
	ID              string `json:"id"`
	Study           string `json:"study"`
	Organism        string `json:"organism"`
	Tissue          string `json:"tissue"`
	CollectionDate  string `json:"collection_date"`
	Status          string `json:"status"`
	StorageLocation string `json:"storage_location"`
}

type samplePayload struct {
	Biospecimens []biospecimen `json:"biospecimens"`
	TotalCount   int           `json:"total_count"`
	Note         string        `json:"note"`
}

// sampleBiospecimens returns the canned dataset served when no NASA API
// key is configured.
func sampleBiospecimens() json.RawMessage {
	payload := samplePayload{
		Biospecimens: []biospecimen{
			{
				ID:              "bio-001",
				Study:           "ISS Expedition 68 - Plant Biology",
				Organism:        "Arabidopsis thaliana",
				Tissue:          "Root tissue",
				CollectionDate:  "2023-05-15",
				Status:          "Available",
				StorageLocation: "NASA Ames Research Center",
			},
			{
				ID:              "bio-002",
				Study:           "Mars Simulation - Bacterial Response",
				Organism:        "Pseudomonas aeruginosa",
				Tissue:          "Cell culture",
				CollectionDate:  "2023-03-22",
				Status:          "In Analysis",
				StorageLocation: "Kennedy Space Center",
			},
			{
				ID:              "bio-003",
				Study:           "Year-Long Mission - Bone Health",
				Organism:        "Human",
				Tissue:          "Bone biopsy",
				CollectionDate:  "2023-08-10",
				Status:          "Archived",
				StorageLocation: "JSC Biorepository",
			},
		},
		TotalCount: 3,
		Note:       "Sample data - Configure NASA_API_KEY secret for live data",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// The payload is static; marshalling cannot fail.
		panic(err)
	}
	return data
}
