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

// SIKEp610: p = 2^305 * 3^192 - 1.
var sikeP610 = &variant{
	name:         "SIKEp610",
	eA:           305,
	eB:           192,
	messageBytes: 24,
	cryptoBytes:  24,
	chainInitial: 19,
	chainPow: []int{
		5, 4, 5, 6, 4, 6, 11, 8, 6, 8, 6, 3, 7, 3, 8, 4,
		6, 7, 6, 7, 4, 5, 6, 4, 8, 5, 6, 6, 4, 6, 6, 3,
		6, 9, 8, 4, 6, 6, 3, 8, 1, 9, 5, 6, 6, 6, 6, 1,
		11, 7, 1, 13, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3,
	},
	chainMul: []int{
		27, 15, 13, 19, 11, 17, 25, 1, 3, 9, 17, 7, 31, 3, 17, 9,
		25, 21, 27, 23, 13, 1, 3, 1, 9, 9, 21, 13, 7, 15, 31, 5,
		5, 9, 31, 15, 13, 23, 3, 23, 1, 19, 15, 17, 21, 11, 21, 1,
		23, 27, 1, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 7,
	},
	pa: pointHex{
		x: "1b368bc6019b46cd802129209b3e65b98bc64a92bc4db2f9f3ac96b97a1b9c12" +
			"4df549b528f18beecb1666d27d47530435e84221272f3a97fb80527d8f8a359f" +
			"8f1598d365744ca3070a5f26c",
		xi: "1459685dca7112d1f6030dbc98f2c9cbb41617b6ad913e6523416ccbd8ed9c78" +
			"41d97df83092b9b3f2af00d62e08dad8fa743cbcccc1782be0186a3432d3c97c" +
			"37ca16873bede01f0637c1aa2",
		y: "1cd75cf512ffa9df878ef495001a57abc07fc7ce9bb488bb52ddcd7272d8a4fd" +
			"17dd258ed3f844c862cf48803b9ac2668c7cb79c396128763b578080c30d14ca" +
			"7eb709f98e3e682a391fb35a7",
		yi: "2001062a6289e4082ced884029207a1acdec525d7bc165a6cff8bb469a858895" +
			"0a416dbb924d2d673e3d6c32d232f6e6ada62b37608f652c0b8628827b304bf1" +
			"365d8211346207b24eff09458",
	},
	qa: pointHex{
		x: "25da39ec90cdfb9bc0f772cda52cb8b5a9f478d7af8dbba0aeb3e52432822dd8" +
			"8c38f4e3aec0746e56149f1fe89707c77f8ba4134568629724f4a8e34b06bfe5" +
			"c5e66e0867ec38b283798b8a",
		xi: "2250e1959256ae502428338cb4715399551aec78d8935b2dc73fcdcfbdb1a011" +
			"8a2d3ef03489ba6f637b1c7fee7e5f31340a1a537b76b5b736b4cdd284918918" +
			"e8c986fc02741fb8c98f0a0ed",
		y: "a4fd5539025c0611e4b1cec3c36f0d7590c035d3a25ad93022849cceb3f67e4b" +
			"1dbe988404290dd8b87b8d5e69ed3b0c5cdbca248dc9d174cf762012cfe2d725" +
			"cfd92057f2dbf8b04c7b12cc",
		yi: "201c807bd738624e22b87554a2e053a46a9573ba863d4a9d309533e30b27bf7d" +
			"d8137f5ce0f79c263d9d050541d69817a839085a76395f879315f6999e3441fc" +
			"8fb3936dee1bef5b4e0e25096",
	},
	ra: pointHex{
		x: "1b36a006d05f9e370d5078cca54a16845b2bff737c865368707c0dbbe9f5a62a" +
			"9b9c79adf11932a9fa4806210e25c92db019cc146706dfbc7fa2638ecc4343c1" +
			"e390426faa7f2f07fda163fb5",
		xi: "183c9abf2297ca69699357f58fed92553436bbeba2c3600d89522e7009d19ea5" +
			"d6c18cff993aa3aa33923ed93592b0637ed0b33adf12388ae912bc4ae4749e2d" +
			"f3c3292994dcf37747518a992",
	},
	pb: pointHex{
		x: "1f63d34d1f52dd15b3dd7da3ba83193793830469ad6781b97c370d38396dc040" +
			"0f5de33c0e47336a27cbbd353bf802faf82fae33b5a9457084368171e4d97d3f" +
			"2fe001186042c8b1a6757cc2b",
		xi: "229b28068cb04bb52bc52d7600414ee3b7dcbdee07f75db583b00643155cf812" +
			"aa5fee49d711e98ac858316cdae139b7c37c8c0970eb16a26cfd776e88dad65a" +
			"4ca48d6cb447b8f48a50b3df3",
		y: "d00d073ad700389c4c81bc6aa0d662b75703f36abf8a94e7a55744c1ced74687" +
			"b07bf1885173b3aa2e85d27e8ab15629d78ecbe7c2b0ef38b8c5f3ed165d5d7c" +
			"9c67f61ac9cb712df1b35a5a",
		yi: "8b43f651000cedcf37f989f68081f68cfeff1c235432a4651e6e868928abc947" +
			"bc73baa64ba08932ca4af2980b6fd37bf2132e0e721e22589ff586a298eebf6d" +
			"0e286133ffbfadba7d2161c3",
	},
	qb: pointHex{
		x: "187c0855a1e9a347917cf3c979d0cc61190e9daf58ef7c837bc96f82cc673e98" +
			"77842bbb6a1a84b235b55f58992049656e6b5f90555b308136e0a76589d3ab3b" +
			"9a36c02f701383d24a37d0d4a",
		xi: "85d0f602d9afe6e3e6b9e1b2fc6e1dd2e1720ad40e7774f04e0ee9e257df9e19" +
			"020988b3cddedd9c8250139376c01e8ed16aedfa45970e864839960feb12159c" +
			"4354ae6e50ba37293f267729",
		y: "1366040cc342941677257cc42f161a19a0809f9b2f20de4a9e23f193f2b00fd6" +
			"d6cd972746189a9f2f62fde3210efa0f91f80199332ca7b070505f82eb9a64b6" +
			"b4172280a42c04ff46484600",
		yi: "211afe1b553ef9c6fe0f7f435d7a2d53e74f676e6df75a566573adf9285ccff7" +
			"15a16b13cfebda2e2046d4df95a399504e3f3d0e3eabbf4cff21870bcd00e90d" +
			"9e561d2319506f1840e0d7d4c",
	},
	rb: pointHex{
		x: "1830030afdf9fc4db3d818b37c5ea5de9e15979d83250f6d49d4d52fe98da816" +
			"e6347ebe54784c033674111d2b36ce523c661f7f55d900123de5317e7cf91e7e" +
			"2280b6759ef55f02867840da7",
		xi: "1990de789f8d54816cba4bee497de807273ca03fad780ce1db64b9bc50ef200e" +
			"a851d281ecd2af52c9f2d979f79a1a321e5ebacddbbb90660d505c9329af09ab" +
			"c25f8c91c3cca0ff76d18cb22",
	},
	strategyA: []int{
		55, 34, 21, 13, 8, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
		5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 8, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
		13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2,
		1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
		3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2,
		1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
		3, 2, 1, 1, 1, 1, 1,
	},
	strategyB: []int{
		55, 48, 34, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1,
		1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1, 1,
		1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3,
		2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 14, 13, 8, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
		5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 5, 3, 2, 1,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 21, 13, 8, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5,
		3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 8, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
	},
}
