package pipeline

// ComponentKind 输出组件类型
type ComponentKind int

const (
	// ComponentPlain 纯文本消息
	ComponentPlain ComponentKind = iota
	// ComponentImage 图片消息
	ComponentImage
	// ComponentFile 文件消息
	ComponentFile
)

// String 返回类型名称
func (k ComponentKind) String() string {
	switch k {
	case ComponentPlain:
		return "plain"
	case ComponentImage:
		return "image"
	case ComponentFile:
		return "file"
	default:
		return "unknown"
	}
}

// Component 处理结果中的一个消息组件，按出现顺序交给宿主框架发送
type Component struct {
	Kind ComponentKind
	// Text 纯文本内容，仅 ComponentPlain 有效
	Text string
	// Path 图片或文件的路径，仅 ComponentImage / ComponentFile 有效
	Path string
}

// PlainComponent 创建纯文本组件
func PlainComponent(text string) Component {
	return Component{Kind: ComponentPlain, Text: text}
}

// ImageComponent 创建图片组件
func ImageComponent(path string) Component {
	return Component{Kind: ComponentImage, Path: path}
}

// FileComponent 创建文件组件
func FileComponent(path string) Component {
	return Component{Kind: ComponentFile, Path: path}
}
