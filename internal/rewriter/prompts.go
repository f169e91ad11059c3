package rewriter

const organizeSystemPrompt = `你是一位出版社的资深编辑，有20年的丰富工作资历。你擅长把各种杂乱的资料，理出头绪。
请一步步思考，输出markdown格式的内容，不要输出任何与要求无关的内容，更不要进行总结。
请保持严谨的学术态度，确保输出的内容既专业又易读。

特别注意：
1. 这可能是一个长文的其中一部分
2. 保持内容的连贯性
3. 不要随意删减重要信息
4. 使用markdown格式组织内容
5. 确保每个要点都得到保留`

const organizeUserPrompt = `请将以下内容整理成结构清晰的文章片段，要求：
1. 保持原文的核心信息和专业性
2. 使用markdown格式
3. 按照逻辑顺序组织内容
4. 适当添加标题和分段
5. 确保可读性的同时不损失重要信息

原文内容：

%s`

const coherenceUserPrompt = `请检查并优化以下文章的整体连贯性，要求：
1. 确保各部分之间的过渡自然
2. 消除可能的重复内容
3. 统一文章的风格和格式
4. 保持markdown格式
5. 不要删减重要信息

原文内容：

%s`

// OrganizePrompt rewrites one transcript chunk into a structured
// long-form fragment.
func OrganizePrompt() Prompt {
	return Prompt{System: organizeSystemPrompt, User: organizeUserPrompt}
}

// CoherencePrompt smooths the transitions of a stitched multi-chunk note.
func CoherencePrompt() Prompt {
	return Prompt{System: organizeSystemPrompt, User: coherenceUserPrompt}
}
