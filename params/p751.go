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

// SIKEp751: p = 2^372 * 3^239 - 1.
var sikeP751 = &variant{
	name:         "SIKEp751",
	eA:           372,
	eB:           239,
	messageBytes: 32,
	cryptoBytes:  32,
	chainInitial: 27,
	chainPow: []int{
		5, 7, 6, 2, 10, 4, 6, 9, 8, 5, 9, 4, 7, 5, 5, 4,
		8, 3, 9, 5, 5, 4, 10, 4, 6, 6, 6, 5, 8, 9, 3, 4,
		9, 4, 5, 6, 6, 2, 9, 4, 5, 5, 5, 7, 7, 9, 4, 6,
		4, 8, 5, 8, 6, 6, 2, 9, 7, 4, 8, 8, 8, 4, 6, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 2,
	},
	chainMul: []int{
		31, 23, 21, 1, 31, 7, 7, 7, 9, 9, 19, 15, 23, 23, 11, 7,
		25, 5, 21, 17, 11, 5, 17, 7, 11, 9, 23, 9, 1, 19, 5, 3,
		25, 15, 11, 29, 31, 1, 29, 11, 13, 9, 11, 27, 13, 19, 15, 31,
		3, 29, 23, 31, 25, 11, 1, 21, 19, 15, 15, 21, 29, 13, 23, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 3,
	},
	pa: pointHex{
		x: "4514f8cc94b140f24874f8b87281fa6004ca5b3637c68ac0c0bdb29838051f38" +
			"5fbbcc300bbb24bfbbf6710d7dc8b29acb81e429bd1bd5629ad0ecad7c90622f" +
			"6bb801d0337ee6bc78a7f12fdcb09decfae8bfd643c89c3bac1d87f8b6fa",
		xi: "158abf500b5914b3a96ced5fdb37d6dd925f2d6e4f7fea3cc16e108575407773" +
			"7ea6f8cc74938d971da289dcf2435bcac1897d2627693f9bb167dc01be34ac49" +
			"4c60b8a0f65a28d7a31ea0d54640653a8099ce5a84e4f0168d818af02041",
		y: "bf6e4e7a28e9a6ef66a2f1614ae2a2b5a583c9f2dc6c83f84e2d9e6577f9e22b" +
			"991d58fb2f89666dc1d40a2c0a3ab876cf8da8878f12325bf8b0cf92e45ae006" +
			"27041c891bc96ffbb874fc587e4342f78098258df2e10a5708a70a0d5a8",
		yi: "1502fb44178d1df80a53858519cbcf233fe387905bc8f9e4138703c6db7c8230" +
			"2fbfb7e97153f6001fe9102d2597ac2b300a1c669d1a2803f8d05ba3b1f2acbf" +
			"27bc1a127b4a553916d62004fd21633c5aeaab74833853b4c5c42eb71f7e",
	},
	qa: pointHex{
		x: "1723d2bfa01a78bf4e39e3a333f8a7e0b415a17f208d3419e7591d59d8abdb7e" +
			"e6d2b2dfcb21ac29a40f837983c0f057fd041ad93237704f1597d87f074f6829" +
			"61a38b5489d1019924f8a0ef5e4f1b2e64a7ba536e219f5090f76276290e",
		xi: "2569d7eafb6c60b244ef49e05b5e23f73c4f44169a7e02405e90ceb680cb0756" +
			"054ac0e3dce95e2950334262cc973235c2f87d89500bcd465b078bd0debdf322" +
			"a2f86aedfdcfee65c09377efba0c5384dd837bedb710209fbc8ddb8c35c7",
		y: "35b82d1bd2ba608b42794c4820c56a3d8bbad28380b8d85a1910e2609a61f7bc" +
			"0bca8ed8ef883e7e98c744a0ac85d2893738521b62eb23d1983d2edcf2ab4371" +
			"08dc048aa853ff9bc791224b121e8fdf1ea5f617e6ed5898663dded49154",
		yi: "f22306a6963907f16aa38f89c672a4054db5fd1d26598a3140ea204b10094ae6" +
			"4093142aeb056942494d216a74ed9f51ffc9272d1772151013334ec570b532db" +
			"0c083cf39867f63d191029033f942e977b85f69ec738b4c26d3b72e2821",
	},
	ra: pointHex{
		x: "6066e07f3c0d964e8bc963519fac8397df477aea9a067f3be343bc53c883af29" +
			"ccf008e5a30719a29357a8c33eb3600cd078af1c40ed5792763a4d213ebde44c" +
			"c623195c387e0201e7231c529a15af5ab743ee9e7c9c37af3051167525bb",
		xi: "50e30c2c06494249bc4a144eb5f31212bd05a2af0cb3064c322fc3604fc5f5fe" +
			"3a08fb3a02b05a48557e15c992254ffc8910b72b8e1328b4893cdcfbfc003878" +
			"881ce390d909e39f83c5006e0ae979587775443483d13c65b107fada5165",
	},
	pb: pointHex{
		x: "2c61e6f9fe6caae58b35684f8f723646d76e5b5c1451818d386d727cbe787043" +
			"3cfcae3f6f868a536714f97612b37c76e52d004f874323e53c59ff3a45ee112a" +
			"c8cf0c60b33149997a00876b2dce283ba8afb719f9d0265551528b40ab0c",
		xi: "51cdf6af43b7dca89079cbdea58efe2d5c24893eea9dc2bc0b67a510a3a65c7e" +
			"5bfa877d07fbe46e4742b6fc9c9189c1e68510c6773bf1c059d1809205bd99ec" +
			"b953c45afe6d6dbfd0df0f046cf2cd19fb1bf2dcfcb8f164687876d5e3a1",
		y: "53ca0c42d360543e4e4ff6f4005fca5763b9f6a869f81c959bcc47c0ee2f6f9a" +
			"0a03c68ed921b376de8d38dd9e835c90b3dd10b3642aa9f7d1b67baaacb50be7" +
			"08a6bb822db2f51a8e01f23a625828cefd471f8511e61b7fe4e048eeb33b",
		yi: "6b587b7585587f0fd0a4ca25a54c9707fac9edb3171727b0898b64ea61108d51" +
			"a940e2ca9b6286fc9be9a07000f30c404dbef9e043f2623998e3e6d854400747" +
			"adbfae0d24f1347a28c6db43e111fe03cd3e26e4d3bf46dc6a983415b9ee",
	},
	qb: pointHex{
		x: "3ff61454d09b9106509ce69a6cf117078c876ebe958db7a7aa316c67bc349499" +
			"465366e284de596a320bdb680b8e7df93be5c9eb31c24d7595b2aec903ab6627" +
			"65c8a37f3747ff5e69ac6dc8da6f9b64d6796d694728c05821b8362436e5",
		xi: "8431b1aac3ec6a74c9cb6811e7e09a580a2d8d58804916060e2619f4ae4bc7b0" +
			"9eae04c0d107bc6b1f3742dbb95e6c83be015b643506b3df0c11877bc0e54a17" +
			"6179b0f4026e2bfa28b5437e58cfb26ffb3cc6477c65ff0fd70e26e6a4f",
		y: "10fbf9bdea3075ad91f73b576b6337858d12abebcee2d309934cfa9a62bdbed5" +
			"c2e604c9ad93f6c1a33faed4eb24e4fcac36aa3db7c8b6a6f28b2bf958ef5fde" +
			"ce966403aca6085027046ec6de8345ba3451320526d6da0819f856b0eaf9",
		yi: "5076de6a86875b88cf788e937a823072cda19615fca759724167fbbb4955e992" +
			"bbfcc0b5ee63cc47992e015fd25d4de15f94380683438a4d7dd45b4054b8a5b4" +
			"93e66da9b0a06f00f8ab101e93d16a028ff0269635b69032963d1bcbe946",
	},
	rb: pointHex{
		x: "2e8c6c1c2e4b7749f37dbf36ac334a7fbf40b043704c7de3a2c9c9f0466806d3" +
			"a4530c539958e0220de90be327b399f493a955b034b0dec4e8e8e32f79121d36" +
			"9e3d24793f5cb433ed816d2e7b7e5010b20e69dfcb11a0fe7ba98d23e1ca",
		xi: "3cd4ced9405081bb8ee14b430c51b9ef38a0c9532f522b90f378da53b769e337" +
			"1e284cd0b26244ebbd830814eed5350e78b0feaa401e9ff482cf0322626fdc7f" +
			"69b2019f7a73edfe5cccc9b66a315bdf05e643a0a00bcf8e252901c99f15",
	},
	strategyA: []int{
		55, 42, 34, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1,
		1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1, 1,
		1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3,
		2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 13, 8, 8, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
		3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2,
		1, 1, 1, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1,
		1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1,
	},
	strategyB: []int{
		89, 55, 34, 21, 13, 8, 6, 5, 3, 2, 1, 1, 1, 1, 1, 2,
		1, 1, 1, 2, 1, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5,
		3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 8, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 13,
		8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1,
		1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
		21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3,
		2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3,
		2, 1, 1, 1, 1, 1, 34, 21, 13, 8, 5, 3, 2, 1, 1, 1,
		1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1,
		1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5,
		3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1,
		1, 1, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
	},
}
