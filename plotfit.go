// Package plotfit turns two comma-separated number lists into a styled chart
// with a least-squares line, an R² score and, for more than three points, a
// cubic smoothing spline.
//
// Usage:
//
//	import "github.com/spektr-org/plotfit/engine"
//
//	result, err := engine.Execute(engine.PlotRequest{
//	    Title: "Hexaboride sample",
//	    X:     "0.1, 0.2, 0.3, 0.4, 0.5",
//	    Y:     "1270, 1268.5, 1266.9, 1265.2, 1263.8",
//	    Kind:  "Scatter",
//	})
//	if err != nil {
//	    fmt.Println(engine.UserMessage(err))
//	}
//
// The engine returns render-ready output (chart config, point table,
// regression info). The render package draws a ChartConfig as PNG or SVG;
// the server package puts both behind a stateless HTTP form.
// All computation is local and per request.
package plotfit
