package storage

import (
	"github.com/good-yellow-bee/gradtrack/internal/models"
)

// presetCatalog is the fixed seed catalog of school/program templates.
// Ids are stable so mock notifications can reference them.
var presetCatalog = []models.PresetProject{
	{
		ID:          "preset-1",
		Name:        "Master of Finance",
		School:      "Tsinghua University",
		Major:       "Finance",
		Description: "Master of Finance at Tsinghua PBC School of Finance, training high-level finance professionals.",
		OfficialURL: "https://www.pbcsf.tsinghua.edu.cn/",
	},
	{
		ID:          "preset-2",
		Name:        "Master of Finance",
		School:      "Peking University",
		Major:       "Finance",
		Description: "Master of Finance at Peking University Guanghua School of Management, a top finance program.",
		OfficialURL: "https://www.gsm.pku.edu.cn/",
	},
	{
		ID:          "preset-3",
		Name:        "Computer Science and Technology",
		School:      "Tsinghua University",
		Major:       "Computer Science",
		Description: "Graduate program of the Tsinghua Department of Computer Science, a leading CS institution.",
		OfficialURL: "https://www.cs.tsinghua.edu.cn/",
	},
	{
		ID:          "preset-4",
		Name:        "Computer Science and Technology",
		School:      "Peking University",
		Major:       "Computer Science",
		Description: "Computer science at the Peking University School of EECS.",
		OfficialURL: "https://eecs.pku.edu.cn/",
	},
	{
		ID:          "preset-5",
		Name:        "School of Mathematical Sciences",
		School:      "Fudan University",
		Major:       "Mathematics",
		Description: "Fudan University School of Mathematical Sciences, renowned in mathematics.",
		OfficialURL: "https://math.fudan.edu.cn/",
	},
	{
		ID:          "preset-6",
		Name:        "Shanghai Advanced Institute of Finance",
		School:      "Shanghai Jiao Tong University",
		Major:       "Finance",
		Description: "Master of Finance at the Shanghai Advanced Institute of Finance, SJTU.",
		OfficialURL: "https://www.saif.sjtu.edu.cn/",
	},
	{
		ID:          "preset-7",
		Name:        "School of Economics and Management",
		School:      "Renmin University of China",
		Major:       "Business",
		Description: "Renmin University School of Economics and Management, a traditional powerhouse in business.",
		OfficialURL: "https://sem.ruc.edu.cn/",
	},
	{
		ID:          "preset-8",
		Name:        "School of Mathematics",
		School:      "University of Science and Technology of China",
		Major:       "Mathematics",
		Description: "USTC School of Mathematics, a center of fundamental mathematics research.",
		OfficialURL: "https://math.ustc.edu.cn/",
	},
}

// PresetCatalog returns the fixed preset catalog. Callers get fresh
// copies; the catalog itself is immutable.
func PresetCatalog() []*models.PresetProject {
	out := make([]*models.PresetProject, len(presetCatalog))
	for i := range presetCatalog {
		p := presetCatalog[i]
		out[i] = &p
	}
	return out
}
