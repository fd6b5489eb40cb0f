package catalog

import "github.com/angelmondragon/skb-upsell-backend/pkg/enums"

const (
	InternetID100M = "int_100m"
	InternetID500M = "int_500m"
	InternetID1G   = "int_1g"

	TvLite     = "tv_lite"
	TvStandard = "tv_standard"
	TvAll      = "tv_all"
	TvAllPlus  = "tv_all_plus"

	TvPop100 = "pop_100"
	TvPop180 = "pop_180"
	TvPop230 = "pop_230"

	StbSmart3 = "stb_smart3"
	StbAI4V   = "stb_ai4v"
	StbAI2    = "stb_ai2"
	StbApple  = "stb_apple"

	StbSmart3Pop = "stb_smart3_pop"
	StbAI2Pop    = "stb_ai2_pop"

	AddOnWings  = "addon_wings"
	AddOnRelief = "addon_relief"
)

const (
	defaultInternetID     = InternetID500M
	secondaryStbFlatPrice = 2200
	secondaryStbName      = "Smart 3"
)

func build() *Catalog {
	return &Catalog{
		internet: []InternetPlan{
			{ID: InternetID100M, DisplayName: "광랜 +WIFI", SpeedLabel: "100M", BasePrice: 23100, Description: "웹서핑 및 일반적인 사용에 적합"},
			{ID: InternetID500M, DisplayName: "인터넷 Giga Lite +WIFI", SpeedLabel: "500M", BasePrice: 34100, Description: "고화질 영상 스트리밍과 게임에 최적"},
			{ID: InternetID1G, DisplayName: "인터넷 Giga +WIFI", SpeedLabel: "1G", BasePrice: 39600, Description: "가장 빠른 속도와 안정적인 연결"},
		},
		addOns: []AddOn{
			{ID: AddOnWings, DisplayName: "윙즈", StandalonePrice: 1650, Description: "끊김 없는 와이파이 확장을 위한 윙즈"},
			{ID: AddOnRelief, DisplayName: "안심서비스", StandalonePrice: 2200, Description: "유해사이트 차단 및 PC/모바일 안심 이용"},
		},
		families: map[enums.Family]familyTables{
			enums.FamilyIPTV: {
				tvs: []TvPlan{
					{ID: TvLite, DisplayName: "B tv 이코노미", ChannelCount: 184, BasePrice: 14300, Family: enums.FamilyIPTV, Description: "필수 채널 중심의 실속형 요금제"},
					{ID: TvStandard, DisplayName: "B tv 스탠다드", ChannelCount: 235, BasePrice: 13200, Family: enums.FamilyIPTV, Description: "인기 채널이 모두 포함된 대표 요금제"},
					{ID: TvAll, DisplayName: "B tv All", ChannelCount: 258, BasePrice: 16500, Family: enums.FamilyIPTV, Description: "B tv의 모든 실시간 채널 시청"},
					{ID: TvAllPlus, DisplayName: "B tv All+", ChannelCount: 258, BasePrice: 22000, Family: enums.FamilyIPTV, Description: "VOD 무제한 시청"},
				},
				stbs: []StbOption{
					{ID: StbSmart3, DisplayName: "Smart 3", BaseRentalPrice: 4400, Family: enums.FamilyIPTV, Description: "작지만 강력한 성능의 기본 셋톱박스"},
					{ID: StbAI2, DisplayName: "AI 2 (NUGU)", BaseRentalPrice: 6600, Family: enums.FamilyIPTV, Description: "인공지능 스피커 기능이 탑재된 셋톱박스"},
					{ID: StbAI4V, DisplayName: "AI 4 VISION", BaseRentalPrice: 8800, Family: enums.FamilyIPTV, Description: "온디바이스 AI로 화질과 사운드를 실시간 최적화"},
					{ID: StbApple, DisplayName: "Apple TV 4K", BaseRentalPrice: 6600, Family: enums.FamilyIPTV, Description: "애플의 생태계와 고화질 영상을 동시에"},
				},
				secondaryTv: map[string]int{
					TvLite:     6050,
					TvStandard: 7700,
					TvAll:      9350,
					TvAllPlus:  14850,
				},
				defaultTvID:  TvLite,
				defaultStbID: StbSmart3,
			},
			enums.FamilyCATV: {
				tvs: []TvPlan{
					{ID: TvPop100, DisplayName: "B tv POP 100", ChannelCount: 100, BasePrice: 7700, Family: enums.FamilyCATV, Description: "케이블 기본 채널"},
					{ID: TvPop180, DisplayName: "B tv POP 180", ChannelCount: 180, BasePrice: 7700, Family: enums.FamilyCATV, Description: "케이블 인기 채널"},
					{ID: TvPop230, DisplayName: "B tv POP 230", ChannelCount: 230, BasePrice: 9900, Family: enums.FamilyCATV, Description: "케이블 전체 채널"},
				},
				stbs: []StbOption{
					{ID: StbSmart3Pop, DisplayName: "Smart 3 POP", BaseRentalPrice: 2200, Family: enums.FamilyCATV, Description: "케이블 기본 셋톱박스"},
					{ID: StbAI2Pop, DisplayName: "AI 2 POP", BaseRentalPrice: 4400, Family: enums.FamilyCATV, Description: "인공지능 스피커 기능이 탑재된 케이블 셋톱박스"},
				},
				secondaryTv: map[string]int{
					TvPop100: 3850,
					TvPop180: 5500,
					TvPop230: 6600,
				},
				defaultTvID:  TvPop100,
				defaultStbID: StbSmart3Pop,
			},
		},
		rules: ruleTables{
			homeBundle: map[string]int{
				InternetID100M: 1100,
				InternetID500M: 5500,
				InternetID1G:   5500,
			},
			familyPlan: map[string]int{
				InternetID100M: 5500,
				InternetID500M: 11000,
				InternetID1G:   11000,
			},
			mobileInternet: map[string]int{
				InternetID100M: 4400,
				InternetID500M: 11000,
				InternetID1G:   13200,
			},
			mobileTv: map[enums.Family]int{
				enums.FamilyIPTV: 1100,
			},
			stbPromo: map[string]map[string]int{
				StbAI2: {
					TvAll:     2200,
					TvAllPlus: 2200,
				},
				StbAI4V: {
					TvAll:     2200,
					TvAllPlus: 4400,
				},
			},
			catvStb: map[string]map[string]int{
				StbAI2Pop: {
					TvPop100: 2200,
					TvPop180: 1100,
					TvPop230: 0,
				},
				StbSmart3Pop: {
					TvPop100: 3300,
					TvPop180: 3300,
					TvPop230: 2200,
				},
			},
			addOnPairs: []addOnPair{
				{id: AddOnWings, with: AddOnRelief, price: 1100},
			},
		},
	}
}
