// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

// Qualitative maps proposed by the ColorBrewer (v1.0) project.
// Source: https://colorbrewer2.org/
var (
	Accent = FromUint8("accent",
		[3]uint8{127, 201, 127}, [3]uint8{190, 174, 212}, [3]uint8{253, 192, 134}, [3]uint8{255, 255, 153},
		[3]uint8{56, 108, 176}, [3]uint8{240, 2, 127}, [3]uint8{191, 91, 23}, [3]uint8{102, 102, 102})

	Dark2 = FromUint8("dark2",
		[3]uint8{27, 158, 119}, [3]uint8{217, 95, 2}, [3]uint8{117, 112, 179}, [3]uint8{231, 41, 138},
		[3]uint8{102, 166, 30}, [3]uint8{230, 171, 2}, [3]uint8{166, 118, 29}, [3]uint8{102, 102, 102})

	Paired = FromUint8("paired",
		[3]uint8{166, 206, 227}, [3]uint8{31, 120, 180}, [3]uint8{178, 223, 138}, [3]uint8{51, 160, 44},
		[3]uint8{251, 154, 153}, [3]uint8{227, 26, 28}, [3]uint8{253, 191, 111}, [3]uint8{255, 127, 0})

	Pastel1 = FromUint8("pastel1",
		[3]uint8{251, 180, 174}, [3]uint8{179, 205, 227}, [3]uint8{204, 235, 197}, [3]uint8{222, 203, 228},
		[3]uint8{254, 217, 166}, [3]uint8{255, 255, 204}, [3]uint8{229, 216, 189}, [3]uint8{253, 218, 236})

	Pastel2 = FromUint8("pastel2",
		[3]uint8{179, 226, 205}, [3]uint8{253, 205, 172}, [3]uint8{203, 213, 232}, [3]uint8{244, 202, 228},
		[3]uint8{230, 245, 201}, [3]uint8{255, 242, 174}, [3]uint8{241, 226, 204}, [3]uint8{204, 204, 204})

	Set1 = FromUint8("set1",
		[3]uint8{228, 26, 28}, [3]uint8{55, 126, 184}, [3]uint8{77, 175, 74}, [3]uint8{152, 78, 163},
		[3]uint8{255, 127, 0}, [3]uint8{255, 255, 51}, [3]uint8{166, 86, 40}, [3]uint8{247, 129, 191})

	Set2 = FromUint8("set2",
		[3]uint8{102, 194, 165}, [3]uint8{252, 141, 98}, [3]uint8{141, 160, 203}, [3]uint8{231, 138, 195},
		[3]uint8{166, 216, 84}, [3]uint8{255, 217, 47}, [3]uint8{229, 196, 148}, [3]uint8{179, 179, 179})

	Set3 = FromUint8("set3",
		[3]uint8{141, 211, 199}, [3]uint8{255, 255, 179}, [3]uint8{190, 186, 218}, [3]uint8{251, 128, 114},
		[3]uint8{128, 177, 211}, [3]uint8{253, 180, 98}, [3]uint8{179, 222, 105}, [3]uint8{252, 205, 229})
)

// Perceptually uniform sequential maps, sampled at 11 evenly spaced stops.
var (
	Viridis = FromUint8("viridis",
		[3]uint8{0x44, 0x01, 0x54}, [3]uint8{0x48, 0x24, 0x75}, [3]uint8{0x41, 0x44, 0x87}, [3]uint8{0x35, 0x5f, 0x8d},
		[3]uint8{0x2a, 0x78, 0x8e}, [3]uint8{0x21, 0x91, 0x8c}, [3]uint8{0x22, 0xa8, 0x84}, [3]uint8{0x44, 0xbf, 0x70},
		[3]uint8{0x7a, 0xd1, 0x51}, [3]uint8{0xbd, 0xdf, 0x26}, [3]uint8{0xfd, 0xe7, 0x25})

	Magma = FromUint8("magma",
		[3]uint8{0x00, 0x00, 0x04}, [3]uint8{0x14, 0x0e, 0x36}, [3]uint8{0x3b, 0x0f, 0x70}, [3]uint8{0x64, 0x1a, 0x80},
		[3]uint8{0x8c, 0x29, 0x81}, [3]uint8{0xb7, 0x37, 0x79}, [3]uint8{0xde, 0x49, 0x68}, [3]uint8{0xf7, 0x70, 0x5c},
		[3]uint8{0xfe, 0x9f, 0x6d}, [3]uint8{0xfe, 0xcf, 0x92}, [3]uint8{0xfc, 0xfd, 0xbf})

	// Coolwarm is the diverging map of Moreland (2009).
	Coolwarm = FromUint8("coolwarm",
		[3]uint8{0x3b, 0x4c, 0xc0}, [3]uint8{0x62, 0x82, 0xea}, [3]uint8{0x8d, 0xb0, 0xfe}, [3]uint8{0xb8, 0xd0, 0xf9},
		[3]uint8{0xdd, 0xdc, 0xdc}, [3]uint8{0xf5, 0xc4, 0xac}, [3]uint8{0xf4, 0x9a, 0x7b}, [3]uint8{0xde, 0x60, 0x4d},
		[3]uint8{0xb4, 0x04, 0x26})
)

func init() {
	for _, cm := range []*Map{Accent, Dark2, Paired, Pastel1, Pastel2, Set1, Set2, Set3, Viridis, Magma, Coolwarm} {
		Register(cm)
	}
}
