package i18n

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":               "Expected {expected}, received {received}",
		"required":                   "Required",
		"unknown_key":                "Unrecognized key(s) in object: {keys}",
		"duplicate_key":              "Duplicate key '{key}'",
		"too_small.string":           "String must contain at least {minimum} character(s)",
		"too_small.string.exact":     "String must contain exactly {minimum} character(s)",
		"too_small.array":            "Array must contain at least {minimum} element(s)",
		"too_small.array.exact":      "Array must contain exactly {minimum} element(s)",
		"too_small.number":           "Number must be greater than or equal to {minimum}",
		"too_small.number.exclusive": "Number must be greater than {minimum}",
		"too_small":                  "Value is too small",
		"too_big.string":             "String must contain at most {maximum} character(s)",
		"too_big.string.exact":       "String must contain exactly {maximum} character(s)",
		"too_big.array":              "Array must contain at most {maximum} element(s)",
		"too_big.array.exact":        "Array must contain exactly {maximum} element(s)",
		"too_big.number":             "Number must be less than or equal to {maximum}",
		"too_big.number.exclusive":   "Number must be less than {maximum}",
		"too_big":                    "Value is too big",
		"invalid_format.email":       "Invalid email",
		"invalid_format.url":         "Invalid url",
		"invalid_format.uuid":        "Invalid uuid",
		"invalid_format.regex":       "Invalid",
		"invalid_format":             "Invalid",
		"invalid_enum":               "Invalid enum value. Expected {options}, received '{received}'",
		"invalid_literal":            "Invalid literal value, expected {expected}",
		"invalid_union":              "Invalid input",
		"discriminator_missing":      "Invalid discriminator value. Expected {options}",
		"discriminator_unknown":      "Invalid discriminator value. Expected {options}",
		"custom":                     "Invalid input",
		"parse_error":                "Parse error",
		"truncated":                  "Input truncated",
	},
	"ja": {
		"invalid_type":               "{expected} が必要ですが {received} が渡されました",
		"required":                   "必須です",
		"unknown_key":                "未知のキーがあります: {keys}",
		"duplicate_key":              "キー '{key}' が重複しています",
		"too_small.string":           "{minimum} 文字以上で入力してください",
		"too_small.string.exact":     "{minimum} 文字で入力してください",
		"too_small.array":            "{minimum} 個以上の要素が必要です",
		"too_small.array.exact":      "{minimum} 個の要素が必要です",
		"too_small.number":           "{minimum} 以上の数値を入力してください",
		"too_small.number.exclusive": "{minimum} より大きい数値を入力してください",
		"too_small":                  "小さすぎます",
		"too_big.string":             "{maximum} 文字以下で入力してください",
		"too_big.string.exact":       "{maximum} 文字で入力してください",
		"too_big.array":              "要素は {maximum} 個以下にしてください",
		"too_big.array.exact":        "{maximum} 個の要素が必要です",
		"too_big.number":             "{maximum} 以下の数値を入力してください",
		"too_big.number.exclusive":   "{maximum} より小さい数値を入力してください",
		"too_big":                    "大きすぎます",
		"invalid_format.email":       "メールアドレスの形式が不正です",
		"invalid_format.url":         "URL の形式が不正です",
		"invalid_format.uuid":        "UUID の形式が不正です",
		"invalid_format.regex":       "形式が不正です",
		"invalid_format":             "形式が不正です",
		"invalid_enum":               "不正な値です。{options} のいずれかを指定してください ('{received}' が渡されました)",
		"invalid_literal":            "不正なリテラル値です。{expected} が必要です",
		"invalid_union":              "入力が不正です",
		"discriminator_missing":      "判別子が不正です。{options} のいずれかを指定してください",
		"discriminator_unknown":      "判別子が不正です。{options} のいずれかを指定してください",
		"custom":                     "入力が不正です",
		"parse_error":                "解析エラー",
		"truncated":                  "入力が打ち切られました",
	},
	"zh": {
		"invalid_type":               "应为 {expected}，实际为 {received}",
		"required":                   "必填",
		"unknown_key":                "对象中存在无法识别的键: {keys}",
		"duplicate_key":              "键 '{key}' 重复",
		"too_small.string":           "字符串至少包含 {minimum} 个字符",
		"too_small.string.exact":     "字符串必须恰好包含 {minimum} 个字符",
		"too_small.array":            "数组至少包含 {minimum} 个元素",
		"too_small.array.exact":      "数组必须恰好包含 {minimum} 个元素",
		"too_small.number":           "数值必须大于或等于 {minimum}",
		"too_small.number.exclusive": "数值必须大于 {minimum}",
		"too_small":                  "值过小",
		"too_big.string":             "字符串最多包含 {maximum} 个字符",
		"too_big.string.exact":       "字符串必须恰好包含 {maximum} 个字符",
		"too_big.array":              "数组最多包含 {maximum} 个元素",
		"too_big.array.exact":        "数组必须恰好包含 {maximum} 个元素",
		"too_big.number":             "数值必须小于或等于 {maximum}",
		"too_big.number.exclusive":   "数值必须小于 {maximum}",
		"too_big":                    "值过大",
		"invalid_format.email":       "无效的电子邮件地址",
		"invalid_format.url":         "无效的 URL",
		"invalid_format.uuid":        "无效的 UUID",
		"invalid_format.regex":       "格式无效",
		"invalid_format":             "格式无效",
		"invalid_enum":               "无效的枚举值。应为 {options}，实际为 '{received}'",
		"invalid_literal":            "无效的字面量，应为 {expected}",
		"invalid_union":              "输入无效",
		"discriminator_missing":      "无效的判别值。应为 {options}",
		"discriminator_unknown":      "无效的判别值。应为 {options}",
		"custom":                     "输入无效",
		"parse_error":                "解析错误",
		"truncated":                  "输入被截断",
	},
}
