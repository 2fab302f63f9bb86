package region

import "regexp"

// 省, 市, 特别行政区, 自治区 作为后缀去掉; 区、县不去掉, 区县数目太多, 去掉后容易误配
var stopSuffix = regexp.MustCompile(`([省市]|特别行政区|自治区)$`)

// 自治区、自治州、自治县简写
var autonomousShortNames = map[string]string{
	"内蒙古自治区":          "内蒙古",
	"广西壮族自治区":         "广西",
	"西藏自治区":           "西藏",
	"新疆维吾尔自治区":        "新疆",
	"宁夏回族自治区":         "宁夏",
	"湘西土家族苗族自治州":      "湘西州",
	"本溪满族自治县":         "本溪县",
	"乳源瑶族自治县":         "乳源县",
	"宁蒗彝族自治县":         "宁蒗县",
	"伊通满族自治县":         "伊通县",
	"威宁彝族回族苗族自治县":     "威宁县",
	"长白朝鲜族自治县":        "长白县",
	"互助土族自治县":         "互助县",
	"围场满族蒙古族自治县":      "围场县",
	"紫云苗族布依族自治县":      "紫云县",
	"杜尔伯特蒙古族自治县":      "杜尔伯特县",
	"寻甸回族彝族自治县":       "寻甸县",
	"峨山彝族自治县":         "峨山县",
	"景东彝族自治县":         "景东县",
	"清原满族自治县":         "清原县",
	"长阳土家族自治县":        "长阳县",
	"白沙黎族自治县":         "白沙县",
	"维西傈僳族自治县":        "维西县",
	"肃南裕固族自治县":        "肃南县",
	"元江哈尼族彝族傣族自治县":    "元江县",
	"都安瑶族自治县":         "都安县",
	"双江拉祜族佤族布朗族傣族自治县": "双江县",
	"岫岩满族自治县":         "岫岩县",
	"化隆回族自治县":         "化隆县",
	"喀喇沁左翼蒙古族自治县":     "喀喇沁左翼县",
	"桓仁满族自治县":         "桓仁县",
	"木垒哈萨克自治县":        "木垒县",
	"三江侗族自治县":         "三江县",
	"关岭布依族苗族自治县":      "关岭县",
	"焉耆回族自治县":         "焉耆县",
	"北川羌族自治县":         "北川县",
	"宽城满族自治县":         "宽城县",
	"镇沅彝族哈尼族拉祜族自治县":   "镇沅县",
	"孟连傣族拉祜族佤族自治县":    "孟连县",
	"琼中黎族苗族自治县":       "琼中县",
	"务川仡佬族苗族自治县":      "务川县",
	"贡山独龙族怒族自治县":      "贡山县",
	"孟村回族自治县":         "孟村县",
	"天祝藏族自治县":         "天祝县",
	"宽甸满族自治县":         "宽甸县",
	"峨边彝族自治县":         "峨边县",
	"河南蒙古族自治县":        "河南蒙旗县",
	"通道侗族自治县":         "通道县",
	"澜沧拉祜族自治县":        "澜沧县",
	"陵水黎族自治县":         "陵水县",
	"马边彝族自治县":         "马边县",
	"张家川回族自治县":        "张家川县",
	"民和回族土族自治县":       "民和县",
	"漾濞彝族自治县":         "漾濞县",
	"前郭尔罗斯蒙古族自治县":     "前郭县",
	"玉屏侗族自治县":         "玉屏县",
	"连山壮族瑶族自治县":       "连山县",
	"禄劝彝族苗族自治县":       "禄劝县",
	"彭水苗族土家族自治县":      "彭水县",
	"循化撒拉族自治县":        "循化县",
	"河口瑶族自治县":         "河口县",
	"融水苗族自治县":         "融水县",
}

// Simplify 名称简写: 优先查自治区划简写表, 否则去掉末尾的 省/市/特别行政区/自治区
func Simplify(name string) string {
	if short, ok := autonomousShortNames[name]; ok {
		return short
	}
	return stopSuffix.ReplaceAllString(name, "")
}
