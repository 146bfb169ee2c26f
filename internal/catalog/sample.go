// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/meshint/genspace/pkg/types"

// sampleStudies returns the built-in demonstration dataset. A fresh
// slice is returned each call so catalogues never share backing arrays.
func sampleStudies() []types.Study {
	return []types.Study{
		{
			ID:         "1",
			Title:      "Microgravity Effects on Arabidopsis Root Development",
			Year:       "2023",
			Mission:    "ISS Expedition 68",
			Summary:    "Comprehensive analysis of plant root architecture changes in microgravity conditions, showing significant alterations in gravitropic response.",
			Tags:       []string{"Plants", "Root Development", "Microgravity"},
			References: []string{"Plant Biology in Space Journal 2023", "NASA Technical Report"},
			Species:    "Arabidopsis",
			Tissue:     "Root",
			OmicsType:  "Transcriptomics",
			Duration:   "30 days",
			Radiation:  "Low",
			Pathway:    "Gravitropic Response",
			Outcome:    "Altered Growth",
			DataType:   "RNA-seq",
		},
		{
			ID:         "2",
			Title:      "Protein Folding in Simulated Martian Environment",
			Year:       "2022",
			Mission:    "Mars Simulation Chamber",
			Summary:    "Investigation of protein stability and folding mechanisms under Martian atmospheric conditions and temperature variations.",
			Tags:       []string{"Protein Folding", "Mars Environment", "Biochemistry"},
			References: []string{"Astrobiology Research 2022", "Space Biochemistry Annual"},
			Species:    "E. coli",
			Tissue:     "Cell Culture",
			OmicsType:  "Proteomics",
			Duration:   "14 days",
			Radiation:  "High",
			Pathway:    "Protein Synthesis",
			Outcome:    "Structural Changes",
			DataType:   "Mass Spectrometry",
		},
		{
			ID:         "3",
			Title:      "Bone Density Changes in Long-Duration Spaceflight",
			Year:       "2023",
			Mission:    "ISS Year-Long Mission",
			Summary:    "Longitudinal study of bone mineral density changes in astronauts during extended missions, with countermeasure effectiveness analysis.",
			Tags:       []string{"Bone Health", "Human Physiology", "Countermeasures"},
			References: []string{"Space Medicine Journal", "NASA Human Research Program"},
			Species:    "Human",
			Tissue:     "Bone",
			OmicsType:  "Metabolomics",
			Duration:   "365 days",
			Radiation:  "Medium",
			Pathway:    "Calcium Metabolism",
			Outcome:    "Bone Loss",
			DataType:   "DEXA Scan",
		},
		{
			ID:         "4",
			Title:      "Bacterial Biofilm Formation in Microgravity",
			Year:       "2022",
			Mission:    "SpaceX CRS-24",
			Summary:    "Study of bacterial biofilm architecture and antibiotic resistance patterns in microgravity conditions.",
			Tags:       []string{"Bacteria", "Biofilms", "Antibiotic Resistance"},
			References: []string{"Microbiology in Space 2022", "Applied Microbiology Journal"},
			Species:    "Pseudomonas aeruginosa",
			Tissue:     "Biofilm",
			OmicsType:  "Genomics",
			Duration:   "21 days",
			Radiation:  "Low",
			Pathway:    "Quorum Sensing",
			Outcome:    "Enhanced Resistance",
			DataType:   "Whole Genome Sequencing",
		},
		{
			ID:         "5",
			Title:      "Muscle Atrophy Mechanisms in Simulated Weightlessness",
			Year:       "2023",
			Mission:    "Bed Rest Study",
			Summary:    "Molecular mechanisms underlying muscle mass loss during prolonged bed rest as a model for spaceflight-induced muscle atrophy.",
			Tags:       []string{"Muscle Atrophy", "Human Physiology", "Exercise Countermeasures"},
			References: []string{"Journal of Applied Physiology", "Space Medicine Research"},
			Species:    "Human",
			Tissue:     "Skeletal Muscle",
			OmicsType:  "Transcriptomics",
			Duration:   "60 days",
			Radiation:  "None",
			Pathway:    "Protein Degradation",
			Outcome:    "Muscle Loss",
			DataType:   "RNA-seq",
		},
		{
			ID:         "6",
			Title:      "Radiation Effects on DNA Repair in Mammalian Cells",
			Year:       "2022",
			Mission:    "Ground-Based Simulation",
			Summary:    "Analysis of DNA damage and repair mechanisms in mammalian cell cultures exposed to space-relevant radiation.",
			Tags:       []string{"DNA Repair", "Radiation Biology", "Cell Culture"},
			References: []string{"Radiation Research Journal", "DNA Repair Mechanisms 2022"},
			Species:    "Mouse",
			Tissue:     "Fibroblasts",
			OmicsType:  "Genomics",
			Duration:   "7 days",
			Radiation:  "High",
			Pathway:    "DNA Repair",
			Outcome:    "Increased Mutations",
			DataType:   "Whole Genome Sequencing",
		},
	}
}
