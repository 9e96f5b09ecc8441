package domain

import "sort"

// Static mirror of the regional lookup data. It is both the seed source for
// the regions/prefectures/stations tables and the fallback served when the
// database is unreachable, so lookup endpoints stay available at the cost of
// staleness. Treat as immutable.

var staticRegions = []Region{
	{ID: 1, Name: "北海道地方", Code: "hokkaido"},
	{ID: 2, Name: "東北地方", Code: "tohoku"},
	{ID: 3, Name: "関東地方", Code: "kanto"},
	{ID: 4, Name: "中部地方", Code: "chubu"},
	{ID: 5, Name: "近畿地方", Code: "kinki"},
	{ID: 6, Name: "中国地方", Code: "chugoku"},
	{ID: 7, Name: "四国地方", Code: "shikoku"},
	{ID: 8, Name: "九州・沖縄地方", Code: "kyushu_okinawa"},
}

var staticPrefectures = []Prefecture{
	// 北海道地方
	{ID: 1, Name: "北海道", Code: "hokkaido", RegionID: 1},

	// 東北地方
	{ID: 2, Name: "青森県", Code: "aomori", RegionID: 2},
	{ID: 3, Name: "岩手県", Code: "iwate", RegionID: 2},
	{ID: 4, Name: "宮城県", Code: "miyagi", RegionID: 2},
	{ID: 5, Name: "秋田県", Code: "akita", RegionID: 2},
	{ID: 6, Name: "山形県", Code: "yamagata", RegionID: 2},
	{ID: 7, Name: "福島県", Code: "fukushima", RegionID: 2},

	// 関東地方
	{ID: 8, Name: "茨城県", Code: "ibaraki", RegionID: 3},
	{ID: 9, Name: "栃木県", Code: "tochigi", RegionID: 3},
	{ID: 10, Name: "群馬県", Code: "gunma", RegionID: 3},
	{ID: 11, Name: "埼玉県", Code: "saitama", RegionID: 3},
	{ID: 12, Name: "千葉県", Code: "chiba", RegionID: 3},
	{ID: 13, Name: "東京都", Code: "tokyo", RegionID: 3},
	{ID: 14, Name: "神奈川県", Code: "kanagawa", RegionID: 3},

	// 中部地方
	{ID: 15, Name: "新潟県", Code: "niigata", RegionID: 4},
	{ID: 16, Name: "富山県", Code: "toyama", RegionID: 4},
	{ID: 17, Name: "石川県", Code: "ishikawa", RegionID: 4},
	{ID: 18, Name: "福井県", Code: "fukui", RegionID: 4},
	{ID: 19, Name: "山梨県", Code: "yamanashi", RegionID: 4},
	{ID: 20, Name: "長野県", Code: "nagano", RegionID: 4},
	{ID: 21, Name: "岐阜県", Code: "gifu", RegionID: 4},
	{ID: 22, Name: "静岡県", Code: "shizuoka", RegionID: 4},
	{ID: 23, Name: "愛知県", Code: "aichi", RegionID: 4},

	// 近畿地方
	{ID: 24, Name: "三重県", Code: "mie", RegionID: 5},
	{ID: 25, Name: "滋賀県", Code: "shiga", RegionID: 5},
	{ID: 26, Name: "京都府", Code: "kyoto", RegionID: 5},
	{ID: 27, Name: "大阪府", Code: "osaka", RegionID: 5},
	{ID: 28, Name: "兵庫県", Code: "hyogo", RegionID: 5},
	{ID: 29, Name: "奈良県", Code: "nara", RegionID: 5},
	{ID: 30, Name: "和歌山県", Code: "wakayama", RegionID: 5},

	// 中国地方
	{ID: 31, Name: "鳥取県", Code: "tottori", RegionID: 6},
	{ID: 32, Name: "島根県", Code: "shimane", RegionID: 6},
	{ID: 33, Name: "岡山県", Code: "okayama", RegionID: 6},
	{ID: 34, Name: "広島県", Code: "hiroshima", RegionID: 6},
	{ID: 35, Name: "山口県", Code: "yamaguchi", RegionID: 6},

	// 四国地方
	{ID: 36, Name: "徳島県", Code: "tokushima", RegionID: 7},
	{ID: 37, Name: "香川県", Code: "kagawa", RegionID: 7},
	{ID: 38, Name: "愛媛県", Code: "ehime", RegionID: 7},
	{ID: 39, Name: "高知県", Code: "kochi", RegionID: 7},

	// 九州・沖縄地方
	{ID: 40, Name: "福岡県", Code: "fukuoka", RegionID: 8},
	{ID: 41, Name: "佐賀県", Code: "saga", RegionID: 8},
	{ID: 42, Name: "長崎県", Code: "nagasaki", RegionID: 8},
	{ID: 43, Name: "熊本県", Code: "kumamoto", RegionID: 8},
	{ID: 44, Name: "大分県", Code: "oita", RegionID: 8},
	{ID: 45, Name: "宮崎県", Code: "miyazaki", RegionID: 8},
	{ID: 46, Name: "鹿児島県", Code: "kagoshima", RegionID: 8},
	{ID: 47, Name: "沖縄県", Code: "okinawa", RegionID: 8},
}

// locationPrefectureMap maps municipality strings to prefecture names.
// 池袋区 is not a real ward (it is 豊島区) but legacy rows use it, so the
// mapping keeps it.
var locationPrefectureMap = map[string]string{
	"渋谷区":  "東京都",
	"新宿区":  "東京都",
	"池袋区":  "東京都",
	"千代田区": "東京都",
	"港区":   "東京都",
	"台東区":  "東京都",
	"目黒区":  "東京都",
	"品川区":  "東京都",
	"中央区":  "東京都",
	"文京区":  "東京都",
	"墨田区":  "東京都",
	"江東区":  "東京都",
	"豊島区":  "東京都",
	"北区":   "東京都",
	"荒川区":  "東京都",
	"板橋区":  "東京都",
	"練馬区":  "東京都",
	"足立区":  "東京都",
	"葛飾区":  "東京都",
	"江戸川区": "東京都",
	"世田谷区": "東京都",
	"杉並区":  "東京都",
	"中野区":  "東京都",
}

// SeedStation is one row of the built-in major-station data set.
type SeedStation struct {
	Name           string
	Location       string
	PrefectureName string
}

var seedStations = []SeedStation{
	// 北海道
	{Name: "札幌駅", Location: "札幌市", PrefectureName: "北海道"},
	{Name: "新千歳空港駅", Location: "千歳市", PrefectureName: "北海道"},
	{Name: "函館駅", Location: "函館市", PrefectureName: "北海道"},
	{Name: "旭川駅", Location: "旭川市", PrefectureName: "北海道"},

	// 東北地方
	{Name: "青森駅", Location: "青森市", PrefectureName: "青森県"},
	{Name: "盛岡駅", Location: "盛岡市", PrefectureName: "岩手県"},
	{Name: "仙台駅", Location: "仙台市", PrefectureName: "宮城県"},
	{Name: "秋田駅", Location: "秋田市", PrefectureName: "秋田県"},
	{Name: "山形駅", Location: "山形市", PrefectureName: "山形県"},
	{Name: "郡山駅", Location: "郡山市", PrefectureName: "福島県"},
	{Name: "いわき駅", Location: "いわき市", PrefectureName: "福島県"},

	// 関東地方
	{Name: "水戸駅", Location: "水戸市", PrefectureName: "茨城県"},
	{Name: "つくば駅", Location: "つくば市", PrefectureName: "茨城県"},
	{Name: "宇都宮駅", Location: "宇都宮市", PrefectureName: "栃木県"},
	{Name: "前橋駅", Location: "前橋市", PrefectureName: "群馬県"},
	{Name: "高崎駅", Location: "高崎市", PrefectureName: "群馬県"},
	{Name: "大宮駅", Location: "さいたま市", PrefectureName: "埼玉県"},
	{Name: "川越駅", Location: "川越市", PrefectureName: "埼玉県"},
	{Name: "千葉駅", Location: "千葉市", PrefectureName: "千葉県"},
	{Name: "船橋駅", Location: "船橋市", PrefectureName: "千葉県"},
	{Name: "柏駅", Location: "柏市", PrefectureName: "千葉県"},

	// 東京都
	{Name: "東京駅", Location: "千代田区", PrefectureName: "東京都"},
	{Name: "新宿駅", Location: "新宿区", PrefectureName: "東京都"},
	{Name: "渋谷駅", Location: "渋谷区", PrefectureName: "東京都"},
	{Name: "池袋駅", Location: "豊島区", PrefectureName: "東京都"},
	{Name: "品川駅", Location: "港区", PrefectureName: "東京都"},
	{Name: "上野駅", Location: "台東区", PrefectureName: "東京都"},
	{Name: "秋葉原駅", Location: "千代田区", PrefectureName: "東京都"},
	{Name: "原宿駅", Location: "渋谷区", PrefectureName: "東京都"},
	{Name: "恵比寿駅", Location: "渋谷区", PrefectureName: "東京都"},
	{Name: "代官山駅", Location: "目黒区", PrefectureName: "東京都"},
	{Name: "新橋駅", Location: "港区", PrefectureName: "東京都"},
	{Name: "有楽町駅", Location: "千代田区", PrefectureName: "東京都"},
	{Name: "銀座駅", Location: "中央区", PrefectureName: "東京都"},
	{Name: "六本木駅", Location: "港区", PrefectureName: "東京都"},
	{Name: "表参道駅", Location: "港区", PrefectureName: "東京都"},
	{Name: "赤坂駅", Location: "港区", PrefectureName: "東京都"},

	// 神奈川県
	{Name: "横浜駅", Location: "横浜市", PrefectureName: "神奈川県"},
	{Name: "川崎駅", Location: "川崎市", PrefectureName: "神奈川県"},
	{Name: "藤沢駅", Location: "藤沢市", PrefectureName: "神奈川県"},
	{Name: "鎌倉駅", Location: "鎌倉市", PrefectureName: "神奈川県"},
	{Name: "小田原駅", Location: "小田原市", PrefectureName: "神奈川県"},

	// 中部地方
	{Name: "新潟駅", Location: "新潟市", PrefectureName: "新潟県"},
	{Name: "富山駅", Location: "富山市", PrefectureName: "富山県"},
	{Name: "金沢駅", Location: "金沢市", PrefectureName: "石川県"},
	{Name: "福井駅", Location: "福井市", PrefectureName: "福井県"},
	{Name: "甲府駅", Location: "甲府市", PrefectureName: "山梨県"},
	{Name: "長野駅", Location: "長野市", PrefectureName: "長野県"},
	{Name: "松本駅", Location: "松本市", PrefectureName: "長野県"},
	{Name: "岐阜駅", Location: "岐阜市", PrefectureName: "岐阜県"},
	{Name: "静岡駅", Location: "静岡市", PrefectureName: "静岡県"},
	{Name: "浜松駅", Location: "浜松市", PrefectureName: "静岡県"},
	{Name: "名古屋駅", Location: "名古屋市", PrefectureName: "愛知県"},
	{Name: "豊田市駅", Location: "豊田市", PrefectureName: "愛知県"},

	// 近畿地方
	{Name: "津駅", Location: "津市", PrefectureName: "三重県"},
	{Name: "四日市駅", Location: "四日市市", PrefectureName: "三重県"},
	{Name: "大津駅", Location: "大津市", PrefectureName: "滋賀県"},
	{Name: "京都駅", Location: "京都市", PrefectureName: "京都府"},
	{Name: "大阪駅", Location: "大阪市", PrefectureName: "大阪府"},
	{Name: "難波駅", Location: "大阪市", PrefectureName: "大阪府"},
	{Name: "天王寺駅", Location: "大阪市", PrefectureName: "大阪府"},
	{Name: "神戸駅", Location: "神戸市", PrefectureName: "兵庫県"},
	{Name: "姫路駅", Location: "姫路市", PrefectureName: "兵庫県"},
	{Name: "奈良駅", Location: "奈良市", PrefectureName: "奈良県"},
	{Name: "和歌山駅", Location: "和歌山市", PrefectureName: "和歌山県"},

	// 中国地方
	{Name: "鳥取駅", Location: "鳥取市", PrefectureName: "鳥取県"},
	{Name: "松江駅", Location: "松江市", PrefectureName: "島根県"},
	{Name: "岡山駅", Location: "岡山市", PrefectureName: "岡山県"},
	{Name: "倉敷駅", Location: "倉敷市", PrefectureName: "岡山県"},
	{Name: "広島駅", Location: "広島市", PrefectureName: "広島県"},
	{Name: "下関駅", Location: "下関市", PrefectureName: "山口県"},

	// 四国地方
	{Name: "徳島駅", Location: "徳島市", PrefectureName: "徳島県"},
	{Name: "高松駅", Location: "高松市", PrefectureName: "香川県"},
	{Name: "松山駅", Location: "松山市", PrefectureName: "愛媛県"},
	{Name: "高知駅", Location: "高知市", PrefectureName: "高知県"},

	// 九州・沖縄地方
	{Name: "博多駅", Location: "福岡市", PrefectureName: "福岡県"},
	{Name: "天神駅", Location: "福岡市", PrefectureName: "福岡県"},
	{Name: "小倉駅", Location: "北九州市", PrefectureName: "福岡県"},
	{Name: "佐賀駅", Location: "佐賀市", PrefectureName: "佐賀県"},
	{Name: "長崎駅", Location: "長崎市", PrefectureName: "長崎県"},
	{Name: "熊本駅", Location: "熊本市", PrefectureName: "熊本県"},
	{Name: "大分駅", Location: "大分市", PrefectureName: "大分県"},
	{Name: "宮崎駅", Location: "宮崎市", PrefectureName: "宮崎県"},
	{Name: "鹿児島中央駅", Location: "鹿児島市", PrefectureName: "鹿児島県"},
	{Name: "那覇空港駅", Location: "那覇市", PrefectureName: "沖縄県"},
	{Name: "首里駅", Location: "那覇市", PrefectureName: "沖縄県"},
}

// stationLocationMap indexes the seed set by station name for location
// derivation on place writes.
var stationLocationMap = func() map[string]string {
	m := make(map[string]string, len(seedStations))
	for _, s := range seedStations {
		m[s.Name] = s.Location
	}
	return m
}()

// StaticRegions returns the seed/fallback region set, ordered by id.
func StaticRegions() []Region {
	out := make([]Region, len(staticRegions))
	copy(out, staticRegions)
	return out
}

// StaticPrefectures returns the seed/fallback prefectures, optionally filtered
// to one region, ordered by id.
func StaticPrefectures(regionID *int) []Prefecture {
	out := make([]Prefecture, 0, len(staticPrefectures))
	for _, p := range staticPrefectures {
		if regionID != nil && p.RegionID != *regionID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SeedStations returns the built-in station data set.
func SeedStations() []SeedStation {
	out := make([]SeedStation, len(seedStations))
	copy(out, seedStations)
	return out
}

// SeedStationNames is the fallback for the public station dropdown, sorted
// alphabetically like the database path.
func SeedStationNames(prefectureID *int) []string {
	names := make([]string, 0, len(seedStations))
	for _, s := range seedStations {
		if prefectureID != nil {
			id, ok := PrefectureIDByName(s.PrefectureName)
			if !ok || id != *prefectureID {
				continue
			}
		}
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// PrefectureIDByName resolves a prefecture name against the static set.
func PrefectureIDByName(name string) (int, bool) {
	for _, p := range staticPrefectures {
		if p.Name == name {
			return p.ID, true
		}
	}
	return 0, false
}

// PrefectureIDByLocation maps a municipality string to a prefecture id.
// Unknown municipalities soft-fail with ok=false: legacy data predates the
// hierarchy feature, so an unresolvable location is not an error.
func PrefectureIDByLocation(location string) (int, bool) {
	name, ok := locationPrefectureMap[location]
	if !ok {
		return 0, false
	}
	return PrefectureIDByName(name)
}

// LocationByStation maps a station name to its municipality per the seed set.
func LocationByStation(station string) (string, bool) {
	loc, ok := stationLocationMap[station]
	return loc, ok
}

// DeriveLocation is LocationByStation with the UnknownLocation fallback
// applied; place writes always store its result, never caller input.
func DeriveLocation(station string) string {
	if loc, ok := LocationByStation(station); ok {
		return loc
	}
	return UnknownLocation
}
