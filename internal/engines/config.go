package engines

// Config is the engine-specific part of the settings record. The set of
// implementations is closed; switch on the concrete type.
type Config interface {
	Engine() Key
	// Get returns the value of f, or false when this variant has no such field.
	Get(f Field) (string, bool)
	// Set stores v under f and reports whether this variant has the field.
	Set(f Field, v string) bool
	Clone() Config
}

// YoudaoConfig holds Youdao AI cloud credentials.
type YoudaoConfig struct {
	AppKey    string
	AppSecret string
}

func (c *YoudaoConfig) Engine() Key { return Youdao }

func (c *YoudaoConfig) Get(f Field) (string, bool) {
	switch f {
	case FieldAppKey:
		return c.AppKey, true
	case FieldAppSecret:
		return c.AppSecret, true
	}
	return "", false
}

func (c *YoudaoConfig) Set(f Field, v string) bool {
	switch f {
	case FieldAppKey:
		c.AppKey = v
	case FieldAppSecret:
		c.AppSecret = v
	default:
		return false
	}
	return true
}

func (c *YoudaoConfig) Clone() Config {
	cp := *c
	return &cp
}

// BaiduConfig holds Baidu fanyi credentials.
type BaiduConfig struct {
	AppID     string
	AppSecret string
}

func (c *BaiduConfig) Engine() Key { return Baidu }

func (c *BaiduConfig) Get(f Field) (string, bool) {
	switch f {
	case FieldAppID:
		return c.AppID, true
	case FieldAppSecret:
		return c.AppSecret, true
	}
	return "", false
}

func (c *BaiduConfig) Set(f Field, v string) bool {
	switch f {
	case FieldAppID:
		c.AppID = v
	case FieldAppSecret:
		c.AppSecret = v
	default:
		return false
	}
	return true
}

func (c *BaiduConfig) Clone() Config {
	cp := *c
	return &cp
}

// DeepLConfig holds a DeepL API auth key.
type DeepLConfig struct {
	AuthKey string
}

func (c *DeepLConfig) Engine() Key { return DeepL }

func (c *DeepLConfig) Get(f Field) (string, bool) {
	if f == FieldAuthKey {
		return c.AuthKey, true
	}
	return "", false
}

func (c *DeepLConfig) Set(f Field, v string) bool {
	if f != FieldAuthKey {
		return false
	}
	c.AuthKey = v
	return true
}

func (c *DeepLConfig) Clone() Config {
	cp := *c
	return &cp
}
