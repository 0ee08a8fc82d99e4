package generators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/nets"
	"github.com/reusee/aimaker/vars"
)

var temperatureFlag = cmds.Var[float32]("-temperature")

type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Count  dscope.Inject[BPETokenCounter]
	Logger dscope.Inject[logs.Logger]
}

var _ Generator = new(OpenAI)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) CountTokens(text string) (int, error) {
	return o.Count()(text)
}

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {

	temperature := float32(0)
	if o.args.Temperature != nil {
		temperature = *o.args.Temperature
	}
	if *temperatureFlag != 0 {
		temperature = *temperatureFlag
	}

	req := ChatCompletionRequest{
		Model:               o.args.Model,
		Messages:            messages,
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxGenerateTokens),
		Temperature:         temperature,
	}

	var promptText string
	for _, message := range messages {
		promptText += message.Content
	}
	promptTokens, _ := o.CountTokens(promptText)

	// the full prompt goes to the persistent log sink
	o.Logger().InfoContext(ctx, "completion request",
		"model", o.args.Model,
		"temperature", temperature,
		"prompt_tokens", promptTokens,
		"messages", messages,
	)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return "", wrap(err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.args.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", wrap(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		providerErr := ProviderError{
			Err:     err,
			Request: req,
		}
		o.Logger().ErrorContext(ctx, "completion failed",
			"error", providerErr,
		)
		return "", providerErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
			err := fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
			providerErr := ProviderError{
				Err:     err,
				Request: req,
			}
			o.Logger().ErrorContext(ctx, "completion failed",
				"error", providerErr,
			)
			return "", providerErr
		}
		errResp.Error.HTTPStatusCode = resp.StatusCode
		providerErr := ProviderError{
			Err:     errResp.Error,
			Request: req,
		}
		o.Logger().ErrorContext(ctx, "completion failed",
			"error", providerErr,
		)
		return "", providerErr
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", wrap(fmt.Errorf("decode completion response: %w", err))
	}
	if len(completion.Choices) == 0 {
		providerErr := ProviderError{
			Err:     fmt.Errorf("no choices in response"),
			Request: req,
		}
		o.Logger().ErrorContext(ctx, "completion failed",
			"error", providerErr,
		)
		return "", providerErr
	}

	content := completion.Choices[0].Message.Content
	o.Logger().InfoContext(ctx, "completion response",
		"model", o.args.Model,
		"content", content,
	)

	return content, nil
}

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
	defaultKey OpenAIAPIKey,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			client: client,
			apiKey: vars.FirstNonZero(
				apiKey,
				args.APIKey,
				string(defaultKey),
			),
		}
		inject(&ret)
		return ret
	}
}

type ChatCompletionRequest struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
	Temperature         float32   `json:"temperature,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

type ChatCompletionChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}
