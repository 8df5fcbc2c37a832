package consts

const (
	GeminiBaseURL         = "https://generativelanguage.googleapis.com"
	RetroDiffusionBaseURL = "https://api.retrodiffusion.ai"
)

type Supplier string

const (
	Gemini         Supplier = "gemini"
	RetroDiffusion Supplier = "retrodiffusion"
)

func (s Supplier) String() string {
	return string(s)
}

const GeminiFlashModel = "gemini-2.0-flash-exp"

// Inference defaults, matching the fixed payload the pixelart tool was
// built around.
const (
	DefaultSpriteWidth  = 256
	DefaultSpriteHeight = 256
	DefaultSpritePrompt = "angry pickle enemy, 8bit"
	DefaultNumImages    = 1
	DefaultPromptStyle  = "rd_fast__simple"
)

const (
	DefaultOutputDir  = "./assets"
	DefaultOutputFile = "output1.png"
)
