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

// SIKEp503: p = 2^250 * 3^159 - 1.
var sikeP503 = &variant{
	name:         "SIKEp503",
	eA:           250,
	eB:           159,
	messageBytes: 24,
	cryptoBytes:  24,
	chainInitial: 1,
	chainPow: []int{
		12, 5, 5, 2, 7, 11, 3, 8, 4, 11, 4, 7, 5, 6, 3, 7,
		5, 7, 2, 12, 5, 6, 4, 6, 8, 6, 4, 7, 5, 5, 8, 5,
		8, 5, 5, 8, 9, 3, 6, 2, 10, 6, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3,
	},
	chainMul: []int{
		25, 23, 21, 1, 3, 17, 7, 15, 3, 17, 7, 13, 15, 29, 5, 29,
		29, 19, 1, 27, 19, 31, 11, 25, 15, 27, 15, 31, 13, 15, 19, 1,
		11, 15, 13, 17, 17, 7, 15, 1, 21, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 7,
	},
	pa: pointHex{
		x: "2ed31a03825fa14bc1d92c503c061d843223e611a92d7c5fbec0f2c915ee7eee" +
			"73374df6a1161ea00cdcb786155e21fd38220c3772ce670bc68274b851678",
		xi: "1ee4e4e9448fbbab4b5baef280a99b7bf86a1ce05d55bd603c3ba9d7c08fd8de" +
			"7968b49a78851ffbc6d0a17cb2fa1b57f3babef87720dd9a489b5581f915d2",
		y: "244d5f814b6253688138e317f24975e596b09bb15c6418e5295aaf73ba7f96ef" +
			"ed145dfae1b21a8b7b121fefa1b6e8b52f00478218589e604b97359b8a6e0f",
		yi: "181ccc9f0cbe1390cc14149e8de88ee79992da32230dedb25f04fade07f242a9" +
			"057366060cb59927db6dc8b20e6b15747156e3c5300545e9674487ab393ca7",
	},
	qa: pointHex{
		x: "325cf6a8e2c6183a8b9932198039a7f965ba8587b67925d08d809dbf9a69de1b" +
			"621f7f134fa2dab82ff5a2615f92cc71419fffaaf86a290d604ab167616461",
		xi: "3e7b0494c8e60a8b72308ae09ed34845b34ea0911e356b77a11872cf7feeff74" +
			"5d98d0624097bc1ad7cd2adf7ffc2c1aa5ba3c6684b964fa555a0715e57db1",
		y: "63290018060d1ade4a6a61d1d8b6a71a356e75f28a8973376a33e8d1ceddb206" +
			"5622fa96eaa8c0123f6332b66817dc878a61ff5d21dda31fba762dfe028ab",
		yi: "26880458ee0fcd3ca398896f57a8fcbcebe2771700f6a66e8507666fbe4bce43" +
			"f912efa5d60d2c08155d9dbd9569acc787d3a2df040b871b2e372403a47d6b",
	},
	ra: pointHex{
		x: "2f65e800dfb8a171d45959df310d6aa3c26c80c830be5f757cb75740fbfa7ea7" +
			"4b782bfe4cb257f6dfe1ecd049bab397f0c4c8ee64bfc18b5f1b5261e51c28",
		xi: "2dcdf612c49b043c32b65adcedfba73e10376e7018493fbbd22619d4719c1745" +
			"adeee12081fefdc9c0bf0599d0f4031c717dfbc8e9f996b8bd48492a22703a",
	},
	pb: pointHex{
		x: "1d61a89ef44eea7dd0825eeef35605fc12d64868880efd30ac120145c3d0f7b1" +
			"31737ef30e99638ec45ed35d6491b894725600adebb082169d5f7a840190da",
		xi: "2976e65694ffe4311397451078c44485629d3aa539fa97f0e4a4ee210e6b3d03" +
			"31ac6922ef80089ab4a8002c6a9214717aebc6dd1de81f4cbdc70f4509687b",
		y: "1d82a259bb6c9cb6d00ca461cff4e61eac2e135c2bc84f0547869f5fa0ed7ceb" +
			"020e259d659c9888def01e26ccbe7586cd6b48acbdeb26eedf8011efdf1f94",
		yi: "140a34675268971e9d46698e4f59d350ad10382f0c72bb376fb16a0206eae821" +
			"ad2a4b03d9f0d5c4804a6a64043c7b6b7c0c8aca52dcbe4412aabd59f26aa5",
	},
	qb: pointHex{
		x: "1fa7ede4a8277fd6c92b045531d4725b8090429ac58f3426bd6fcd734cb02264" +
			"4b7fe8fb564498a36af138770401388e60c29a820b7a0dc23f6bba6e1d5c57",
		xi: "21195c75d8d6687b7a67382b540c9e79d24fe44a48b5b7b27af52882e064dedf" +
			"6fa5c90d262a5ec4c4dfc453bef8b51d3670ecc9297ddc0930b9b96ea4dd76",
		y: "1c9109e0ecdc8c248a96b740d875128e9f5af29142b9b75d48d55f1529b1835a" +
			"f60e1ec6cb1d135f75916ea3f456e235e5f329191ee69eb41679e005637806",
		yi: "e5bab1f77e21a984c4de9a2302fa843d02adeebd1aa09c81565f20c74cbdb8c9" +
			"c11de93e328f196404ac737bc35fa9eaa7331b4aa1595b7b15d98608c21ce",
	},
	rb: pointHex{
		x: "1aa6be1c9d9666d84d394f5ee16b58412ee597d5977c55113d0f1d78b77ffd4a" +
			"651159a57331e48fbfa9a7559584beaeb84a6738e8482c65af40ccae03a12d",
		xi: "281dc29b2f8bdc1bb0536c76bf3c66e184ec200912e3ad0a2fc4af8f3f4fe705" +
			"2f3177520ea4d6f5fcb4cafd82abb3124d9118570befa6c0e9c59bcff324ea",
	},
	strategyA: []int{
		36, 34, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 1,
		2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1,
		1, 3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1, 1, 1,
		1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 13, 8, 5, 3, 2, 2, 1,
		1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
		5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
	},
	strategyB: []int{
		55, 34, 21, 15, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1,
		1, 2, 1, 1, 1, 5, 3, 2, 2, 1, 1, 1, 1, 1, 1, 2,
		1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 1, 2, 1, 1, 1,
		3, 2, 1, 1, 1, 1, 1, 13, 8, 5, 3, 2, 1, 1, 1, 1,
		1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3, 2, 1,
		1, 1, 1, 1, 2, 1, 1, 1, 21, 13, 8, 5, 3, 2, 1, 1,
		1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1, 5, 3,
		2, 1, 1, 1, 1, 1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1,
		1, 1, 1, 2, 1, 1, 1, 3, 2, 1, 1, 1, 1, 1,
	},
}
