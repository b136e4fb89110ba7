package pipeline

// 向 LLM 说明图片渲染功能使用方式的系统提示，由宿主框架在请求阶段追加

// autoDetectPrompt 自动检测开启时的说明
const autoDetectPrompt = `
你可以自由地使用Markdown格式来编写回复。系统会自动检测复杂的格式（如代码块、表格、数学公式等）并将其转换为图片，以确保在聊天窗口中能够完美显示。

如果你希望强制将某段内容转换为图片，可以继续使用 <md> 和 </md> 标签包裹内容。

简单格式（如粗体、斜体、简单列表等）会保持为文本直接发送。
`

// explicitTagPrompt 仅依赖显式标签时的说明
const explicitTagPrompt = `
当你需要发送包含复杂格式（如代码块、表格、数学公式等）的内容时，请使用 <md> 和 </md> 标签包裹需要转换为图片的Markdown内容。

例如：
<md>
# 复杂内容标题
` + "```python" + `
print("Hello World")
` + "```" + `
</md>
`

// InstructionPrompt 返回应追加到系统提示的使用说明
func InstructionPrompt(autoDetect bool) string {
	if autoDetect {
		return autoDetectPrompt
	}
	return explicitTagPrompt
}
