/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package params

// SIKEp434: p = 2^216 * 3^137 - 1.
var sikeP434 = &variant{
	name:         "SIKEp434",
	eA:           216,
	eB:           137,
	messageBytes: 16,
	cryptoBytes:  16,
	chainInitial: 17,
	chainPow: []int{
		3, 10, 7, 5, 6, 5, 3, 8, 4, 7, 5, 6, 4, 5, 9, 6,
		3, 11, 5, 5, 2, 8, 4, 7, 7, 8, 5, 6, 4, 8, 5, 2,
		10, 6, 5, 4, 8, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 1,
	},
	chainMul: []int{
		5, 31, 19, 17, 29, 25, 5, 17, 11, 31, 17, 31, 13, 13, 7, 5,
		1, 21, 19, 27, 3, 25, 7, 15, 3, 21, 17, 23, 5, 31, 29, 3,
		23, 25, 29, 7, 23, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 1,
	},
	pa: pointHex{
		x: "3ccfc5e1f050030363e6920a0f7a4c6c71e63de63a0e6475af621995705f7c84" +
			"500cb2bb61e950e19eab8661d25c4a50ed279646cb48",
		xi: "1ad1c1cae7840edda6d8a924520f60e573d3b9dfac6d189941cb22326d284a88" +
			"16cc4249410fe80d68047d823c97d705246f869e3ea50",
		y: "1ab066b84949582e3f66688452b9255e72a017c45b148d719d9a63cdb7be6f48" +
			"c812e33b68161d5ab3a0a36906f04a6a6957e6f4fb2e0",
		yi: "fd87f67ea576ce97ff65bf9f4f7688c4c752dce9f8bd2b36ad66e04249aaf833" +
			"7c01e6e4e1a844267ba1a1887b433729e1dd90c7dd2f",
	},
	qa: pointHex{
		x: "c7461738340efcf09ce388f666eb38f7f3afd42dc0b664d9f461f31aa2edc6b4" +
			"ab71bd42f4d7c058e13f64b237ef7ddd2abc0deb0c6c",
		xi: "25de37157f50d75d320dd0682ab4a67e471586fbc2d31aa32e6957fa2b2614c4" +
			"cd40a1e27283eaaf4272ae517847197432e2d61c85f5",
		y: "6017700c715fbe1aece88d332b6749b20d743b7859d503c390d78405c9bd5ee7" +
			"e86fa12f2b0e6c0ceedbd9b6db5a09b101eb4913681a",
		yi: "14c405e5443f3c8152a2e47e844cc7dbef8d6ac9388ac45f08ab9fab1627c165" +
			"3ac5a8d5da2e61eb9b4af6268d8d5189e9a84b89a4c29",
	},
	ra: pointHex{
		x: "9db40748b90f6efea827b3a5bcf9eb87a557508177096192ea57fe83625d0a1e" +
			"73ccd0cfc938ef0d6038673e23d98bd385d9bd0171ae",
		xi: "206a8524488eb0e692a1bbd4ddde523ad8a62d060f14b6d87d515426a88bc50c" +
			"9fffbb6758d57f37ec7ba4528512761c7e1d1655a3345",
	},
	pb: pointHex{
		x: "77727ca6b3f53c3e0a332d05959c130294776b5caf99717ff9f1faf244a89f70" +
			"8f7d0ea5dd098759186c5628f5520a0b6f1aaba5bdd8",
		xi: "eb08d1e974611b01f37c85ac709748fccbd6e38519500b3e39488e32ed9b364f" +
			"e3f6a844657d8bd8c7196c063c214694cc97bd8dd164",
		y: "2200b523ae863dd72efacbd5e4b15660cff85c9bc1eedbdd3b28cf3dafa420d1" +
			"68a98d45f64c1a43eac45d943c5e5142aa1f6e5fa2872",
		yi: "173a8ee3af6364665e2b9d21f5c49325440d1657cdd3f5110c6cfaaf4b61d0d8" +
			"cdbc4024aefc2325f494867082a339501ea9b1efbf291",
	},
	qb: pointHex{
		x: "13edd155afd1ef3bb9423908eafafb3456c47c4f6b573e4f1f95919be36895f8" +
			"0e757b5035f02242940c3ff8d034554fedfc7b8e3ed1f",
		xi: "363dcc7e24841a6b626cf751a1ce7e5d0a2cbd1d46926e7603f5b167caf26443" +
			"f0025708a0d6f373caf06f95e07e276336e9d3a973fa",
		y: "1b771fdf99f7b92a71437cca54629207718054670de90f59dfe537b6f1dda129" +
			"eea62feddd1503bc717cad8ba8b79c2a5c91bf6c5012c",
		yi: "1ebfe3cf0e970f8e8cc4a8ca9b3432abdd154c75f6ec960c09fafe6c37fe00cf" +
			"ba401b831be168eb2e0683f384f33f88ec2204691e982",
	},
	rb: pointHex{
		x: "9352f05ea6f2b20274b67dd5a8c3f485ec4697a005ef95ea362fb4e76347b826" +
			"a247c25994c7f9171e278fb85f205bc70b00fe7da72a",
		xi: "1fff2f08f98cd4b082b11f05715969ad9249e0aecc6a90798f370445b0365732" +
			"bd3a553b18d3d5f81809828bb4d559fd5df81bb4e7fdf",
	},
	strategyA: []int{
		34, 21, 19, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1,
		2, 1, 1, 1, 6, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 2, 1, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2,
		1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5,
		3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
	},
	strategyB: []int{
		48, 34, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1,
		2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1, 1, 1,
		1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 14, 13, 8, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5,
		3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 5, 3, 2, 1, 1,
		1, 1, 1, 1, 2, 1, 1, 1,
	},
}
