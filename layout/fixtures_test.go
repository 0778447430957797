package layout

import "github.com/RyanAdamRojas/textgrid/model"

// Sample OCR output captured from photographed transaction-log screens.
// Each screen shows receipt-like panels in a fixed grid; the extraction
// tool returned the panel texts in arbitrary order. All positions use the
// inverted vertical axis (larger Y nearer the top).

// timesImage01 holds the 12 transaction times from image 01, a full 3x4
// panel grid.
func timesImage01() []model.Feature {
	return []model.Feature{
		{Text: "10:47 PM", X: 331, Y: 3808},
		{Text: "10:13 PM", X: 306, Y: 2788},
		{Text: "10:29 PM", X: 1734, Y: 3816},
		{Text: "10:08 PM", X: 1718, Y: 2780},
		{Text: "9:51 PM", X: 290, Y: 1759},
		{Text: "9:48 PM", X: 1710, Y: 1743},
		{Text: "10:26 PM", X: 3171, Y: 3818},
		{Text: "10:02 PM", X: 3163, Y: 2772},
		{Text: "9:46 PM", X: 3154, Y: 1733},
		{Text: "10:23 PM", X: 4599, Y: 3793},
		{Text: "10:01 PM", X: 4615, Y: 2762},
		{Text: "9:43 PM", X: 4607, Y: 1725},
	}
}

// numbersImage01 holds the transaction numbers from image 01. Number "4"
// (top row, last column) was not detected, so the set has 11 features.
func numbersImage01() []model.Feature {
	return []model.Feature{
		{Text: "1", X: 132, Y: 3736},
		{Text: "5", X: 107, Y: 2723},
		{Text: "2", X: 1519, Y: 3744},
		{Text: "6", X: 1511, Y: 2714},
		{Text: "9", X: 83, Y: 1685},
		{Text: "10", X: 1494, Y: 1668},
		{Text: "3", X: 2963, Y: 3752},
		{Text: "7", X: 2947, Y: 2698},
		{Text: "11", X: 2939, Y: 1668},
		{Text: "8", X: 4400, Y: 2698},
		{Text: "12", X: 4400, Y: 1643},
	}
}

// registersImage01 holds the register names from image 01. The texts are
// mostly identical, which exercises ordering of duplicate values.
func registersImage01() []model.Feature {
	return []model.Feature{
		{Text: "Drive Through", X: 1129, Y: 3711},
		{Text: "Drive Through", X: 1104, Y: 2681},
		{Text: "Drive Through", X: 2548, Y: 3719},
		{Text: "Drive Through", X: 2548, Y: 2673},
		{Text: "Drive Through", X: 1095, Y: 1643},
		{Text: "Drive Through", X: 2540, Y: 1643},
		{Text: "Drive Through", X: 3993, Y: 3702},
		{Text: "Drive Through", X: 3993, Y: 2665},
		{Text: "Drive Through", X: 3985, Y: 1627},
		{Text: "Drive Through", X: 5413, Y: 3677},
		{Text: "Drive Through", X: 5421, Y: 2656},
		{Text: "In-Store", X: 5421, Y: 1618},
	}
}

// totalsImage01 holds the sale totals from image 01. Zero-valued totals are
// legitimate data, not absence markers.
func totalsImage01() []model.Feature {
	return []model.Feature{
		{Text: "11.8", X: 1021, Y: 2971},
		{Text: "6.12", X: 2507, Y: 2954},
		{Text: "6.98", X: 1054, Y: 1933},
		{Text: "12.12", X: 2455, Y: 1913},
		{Text: "6.77", X: 1045, Y: 894},
		{Text: "21.0", X: 2449, Y: 863},
		{Text: "10.83", X: 3843, Y: 2939},
		{Text: "5.36", X: 3943, Y: 1909},
		{Text: "0.0", X: 3943, Y: 855},
		{Text: "12.56", X: 5338, Y: 2930},
		{Text: "12.12", X: 5338, Y: 1901},
		{Text: "0.0", X: 5371, Y: 863},
	}
}

// timesImage15 holds the transaction times from image 15. One time in the
// middle row, second column, was not detected, so the set has 11 features.
func timesImage15() []model.Feature {
	return []model.Feature{
		{Text: "3:08 PM", X: 323, Y: 3817},
		{Text: "3:07 PM", X: 1726, Y: 3835},
		{Text: "3:02 PM", X: 307, Y: 2797},
		{Text: "2:52 PM", X: 290, Y: 1768},
		{Text: "2:51 PM", X: 1718, Y: 1758},
		{Text: "3:06 PM", X: 3171, Y: 3834},
		{Text: "2:55 PM", X: 3162, Y: 2779},
		{Text: "2:50 PM", X: 3154, Y: 1740},
		{Text: "3:05 PM", X: 4607, Y: 3809},
		{Text: "2:52 PM", X: 4616, Y: 2780},
		{Text: "2:48 PM", X: 4615, Y: 1732},
	}
}

// numbersImage15 holds the 12 transaction numbers from image 15, a full
// 3x4 panel grid.
func numbersImage15() []model.Feature {
	return []model.Feature{
		{Text: "169", X: 116, Y: 3744},
		{Text: "170", X: 1519, Y: 3760},
		{Text: "174", X: 1502, Y: 2723},
		{Text: "173", X: 99, Y: 2723},
		{Text: "177", X: 91, Y: 1693},
		{Text: "178", X: 1494, Y: 1685},
		{Text: "171", X: 2955, Y: 3760},
		{Text: "175", X: 2947, Y: 2706},
		{Text: "179", X: 2939, Y: 1677},
		{Text: "172", X: 4400, Y: 3736},
		{Text: "176", X: 4408, Y: 2706},
		{Text: "180", X: 4400, Y: 1660},
	}
}
