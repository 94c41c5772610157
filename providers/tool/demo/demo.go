package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/toolscope/toolscope/providers/tool"
)

// Tools returns the full demo tool set. Each tool has distinct keywords so
// natural-language queries retrieve a small, relevant subset.
func Tools() []tool.GenericTool {
	return []tool.GenericTool{
		NewWeatherTool(),
		NewEmailTool(),
		NewCalendarTool(),
		NewReminderTool(),
		NewTodoTool(),
		NewStockTool(),
		NewNewsTool(),
		NewTranslateTool(),
		NewConvertUnitsTool(),
		NewTimezoneTool(),
	}
}

// WeatherInput names the location to report on.
type WeatherInput struct {
	Location string `json:"location" jsonschema:"description=City or place to get the weather for,required"`
}

// WeatherOutput is a canned forecast.
type WeatherOutput struct {
	Location string  `json:"location"`
	Summary  string  `json:"summary"`
	TempC    float64 `json:"temp_c"`
}

// NewWeatherTool returns a weather lookup stand-in with a fixed forecast.
func NewWeatherTool() *tool.Tool[WeatherInput, WeatherOutput] {
	return tool.NewTool("get_weather",
		func(_ context.Context, in WeatherInput) (WeatherOutput, error) {
			if strings.TrimSpace(in.Location) == "" {
				return WeatherOutput{}, fmt.Errorf("demo: location is required")
			}
			return WeatherOutput{Location: in.Location, Summary: "partly cloudy", TempC: 18.5}, nil
		},
		tool.WithDescription("Get the current weather and temperature for a location."),
		tool.WithKeywords("weather", "forecast", "temperature", "rain", "sunny"),
	)
}

// EmailInput describes an outgoing message.
type EmailInput struct {
	To      string `json:"to" jsonschema:"description=Recipient address or name,required"`
	Subject string `json:"subject" jsonschema:"description=Message subject,required"`
	Body    string `json:"body" jsonschema:"description=Message body"`
}

// EmailOutput confirms the simulated send.
type EmailOutput struct {
	Delivered bool   `json:"delivered"`
	To        string `json:"to"`
}

// NewEmailTool returns an email stand-in that records a delivery without
// sending anything.
func NewEmailTool() *tool.Tool[EmailInput, EmailOutput] {
	return tool.NewTool("send_email",
		func(_ context.Context, in EmailInput) (EmailOutput, error) {
			if in.To == "" {
				return EmailOutput{}, fmt.Errorf("demo: recipient is required")
			}
			return EmailOutput{Delivered: true, To: in.To}, nil
		},
		tool.WithDescription("Send an email message to a recipient."),
		tool.WithKeywords("email", "mail", "send", "message", "recipient"),
	)
}

// CalendarInput describes an event to schedule.
type CalendarInput struct {
	Title string `json:"title" jsonschema:"description=Event title,required"`
	Start string `json:"start" jsonschema:"description=Start time in RFC 3339 format,required"`
}

// CalendarOutput confirms the scheduled event.
type CalendarOutput struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
}

// NewCalendarTool returns a calendar stand-in with deterministic event ids.
func NewCalendarTool() *tool.Tool[CalendarInput, CalendarOutput] {
	return tool.NewTool("create_event",
		func(_ context.Context, in CalendarInput) (CalendarOutput, error) {
			if in.Title == "" {
				return CalendarOutput{}, fmt.Errorf("demo: event title is required")
			}
			return CalendarOutput{EventID: "evt-" + strings.ToLower(strings.ReplaceAll(in.Title, " ", "-")), Title: in.Title}, nil
		},
		tool.WithDescription("Create a calendar event at a given time."),
		tool.WithKeywords("calendar", "event", "schedule", "meeting", "appointment"),
	)
}

// ReminderInput describes a reminder to set.
type ReminderInput struct {
	Text string `json:"text" jsonschema:"description=What to be reminded about,required"`
	At   string `json:"at" jsonschema:"description=When to fire the reminder in RFC 3339 format"`
}

// ReminderOutput confirms the stored reminder.
type ReminderOutput struct {
	Set  bool   `json:"set"`
	Text string `json:"text"`
}

// NewReminderTool returns a reminder stand-in.
func NewReminderTool() *tool.Tool[ReminderInput, ReminderOutput] {
	return tool.NewTool("set_reminder",
		func(_ context.Context, in ReminderInput) (ReminderOutput, error) {
			if in.Text == "" {
				return ReminderOutput{}, fmt.Errorf("demo: reminder text is required")
			}
			return ReminderOutput{Set: true, Text: in.Text}, nil
		},
		tool.WithDescription("Set a reminder for a task or event."),
		tool.WithKeywords("reminder", "remind", "task", "todo", "alert"),
	)
}

// TodoInput describes a list item to add.
type TodoInput struct {
	Item string `json:"item" jsonschema:"description=Item to add to the todo list,required"`
}

// TodoOutput confirms the added item.
type TodoOutput struct {
	Added bool   `json:"added"`
	Item  string `json:"item"`
}

// NewTodoTool returns a todo list stand-in.
func NewTodoTool() *tool.Tool[TodoInput, TodoOutput] {
	return tool.NewTool("add_todo",
		func(_ context.Context, in TodoInput) (TodoOutput, error) {
			if in.Item == "" {
				return TodoOutput{}, fmt.Errorf("demo: todo item is required")
			}
			return TodoOutput{Added: true, Item: in.Item}, nil
		},
		tool.WithDescription("Add an item to the user's todo list."),
		tool.WithKeywords("todo", "list", "item", "checklist", "add"),
	)
}

// StockInput names a ticker symbol.
type StockInput struct {
	Symbol string `json:"symbol" jsonschema:"description=Ticker symbol such as AAPL,required"`
}

// StockOutput is a canned quote.
type StockOutput struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// NewStockTool returns a stock quote stand-in with a fixed price.
func NewStockTool() *tool.Tool[StockInput, StockOutput] {
	return tool.NewTool("get_stock_price",
		func(_ context.Context, in StockInput) (StockOutput, error) {
			if in.Symbol == "" {
				return StockOutput{}, fmt.Errorf("demo: ticker symbol is required")
			}
			return StockOutput{Symbol: strings.ToUpper(in.Symbol), Price: 123.45}, nil
		},
		tool.WithDescription("Get the latest stock price for a ticker symbol."),
		tool.WithKeywords("stock", "price", "ticker", "shares", "market", "finance"),
	)
}

// NewsInput narrows headlines to a topic.
type NewsInput struct {
	Topic string `json:"topic" jsonschema:"description=Topic to get headlines for"`
}

// NewsOutput carries canned headlines.
type NewsOutput struct {
	Headlines []string `json:"headlines"`
}

// NewNewsTool returns a news stand-in with fixed headlines.
func NewNewsTool() *tool.Tool[NewsInput, NewsOutput] {
	return tool.NewTool("get_news",
		func(_ context.Context, in NewsInput) (NewsOutput, error) {
			topic := in.Topic
			if topic == "" {
				topic = "general"
			}
			return NewsOutput{Headlines: []string{
				fmt.Sprintf("Top story in %s", topic),
				fmt.Sprintf("Second story in %s", topic),
			}}, nil
		},
		tool.WithDescription("Get the latest news headlines, optionally for a topic."),
		tool.WithKeywords("news", "headlines", "articles", "stories", "current events"),
	)
}

// TranslateInput carries text and a target language.
type TranslateInput struct {
	Text   string `json:"text" jsonschema:"description=Text to translate,required"`
	Target string `json:"target" jsonschema:"description=Target language code such as 'fr',required"`
}

// TranslateOutput carries the simulated translation.
type TranslateOutput struct {
	Translated string `json:"translated"`
	Target     string `json:"target"`
}

// NewTranslateTool returns a translation stand-in that tags rather than
// translates.
func NewTranslateTool() *tool.Tool[TranslateInput, TranslateOutput] {
	return tool.NewTool("translate_text",
		func(_ context.Context, in TranslateInput) (TranslateOutput, error) {
			if in.Text == "" || in.Target == "" {
				return TranslateOutput{}, fmt.Errorf("demo: text and target language are required")
			}
			return TranslateOutput{Translated: fmt.Sprintf("[%s] %s", in.Target, in.Text), Target: in.Target}, nil
		},
		tool.WithDescription("Translate text into a target language."),
		tool.WithKeywords("translate", "translation", "language", "french", "spanish"),
	)
}

// ConvertUnitsInput carries a value and a unit pair.
type ConvertUnitsInput struct {
	Value float64 `json:"value" jsonschema:"description=Numeric value to convert,required"`
	From  string  `json:"from" jsonschema:"description=Source unit,enum=km,enum=mi,enum=kg,enum=lb,enum=c,enum=f,required"`
	To    string  `json:"to" jsonschema:"description=Target unit,enum=km,enum=mi,enum=kg,enum=lb,enum=c,enum=f,required"`
}

// ConvertUnitsOutput carries the converted value.
type ConvertUnitsOutput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// NewConvertUnitsTool returns a unit converter covering a few common pairs.
func NewConvertUnitsTool() *tool.Tool[ConvertUnitsInput, ConvertUnitsOutput] {
	return tool.NewTool("convert_units",
		func(_ context.Context, in ConvertUnitsInput) (ConvertUnitsOutput, error) {
			var result float64
			switch in.From + ">" + in.To {
			case "km>mi":
				result = in.Value * 0.621371
			case "mi>km":
				result = in.Value / 0.621371
			case "kg>lb":
				result = in.Value * 2.20462
			case "lb>kg":
				result = in.Value / 2.20462
			case "c>f":
				result = in.Value*9/5 + 32
			case "f>c":
				result = (in.Value - 32) * 5 / 9
			default:
				return ConvertUnitsOutput{}, fmt.Errorf("demo: unsupported conversion %s to %s", in.From, in.To)
			}
			return ConvertUnitsOutput{Value: result, Unit: in.To}, nil
		},
		tool.WithDescription("Convert a value between common units of distance, weight, and temperature."),
		tool.WithKeywords("convert", "units", "kilometers", "miles", "kilograms", "pounds", "celsius", "fahrenheit"),
	)
}

// TimezoneInput names a city.
type TimezoneInput struct {
	City string `json:"city" jsonschema:"description=City to look up the timezone for,required"`
}

// TimezoneOutput reports a canned zone.
type TimezoneOutput struct {
	City string `json:"city"`
	Zone string `json:"zone"`
}

// NewTimezoneTool returns a timezone lookup stand-in.
func NewTimezoneTool() *tool.Tool[TimezoneInput, TimezoneOutput] {
	return tool.NewTool("get_timezone",
		func(_ context.Context, in TimezoneInput) (TimezoneOutput, error) {
			if in.City == "" {
				return TimezoneOutput{}, fmt.Errorf("demo: city is required")
			}
			return TimezoneOutput{City: in.City, Zone: "UTC+00:00"}, nil
		},
		tool.WithDescription("Look up the timezone and current UTC offset for a city."),
		tool.WithKeywords("timezone", "time", "clock", "utc", "offset"),
	)
}
