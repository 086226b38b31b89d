package report

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Experiment Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.3rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #bbb; padding: 0.3rem 0.8rem; text-align: right; }
th { background: #eee; }
td.name, th.name { text-align: left; }
.spine { font-weight: bold; color: #7a1fa2; }
.bar { background: #4caf50; height: 0.8rem; display: inline-block; }
</style>
</head>
<body>
<h1>Experiment Report</h1>
<p>Results from <code>{{.ResultsDir}}</code>, samples {{printf "%.2f" .FirstSample}}s to {{printf "%.2f" .LastSample}}s.</p>

<h2>Overview</h2>
<table>
<tr><td class="name">Nodes</td><td>{{.Nodes}}</td></tr>
<tr><td class="name">Spine nodes</td><td>{{range .SpineNodes}}{{.}} {{end}}</td></tr>
<tr><td class="name">Sampling frames</td><td>{{.FrameCount}}</td></tr>
<tr><td class="name">Mean speed (m/s)</td><td>{{printf "%.2f" .MeanSpeed}}</td></tr>
<tr><td class="name">Speed std dev (m/s)</td><td>{{printf "%.2f" .StdDevSpeed}}</td></tr>
<tr><td class="name">Link availability</td><td>{{printf "%.1f%%" (mulp .LinkAvailability)}}</td></tr>
<tr><td class="name">Packets sent</td><td>{{.PacketsSent}}</td></tr>
<tr><td class="name">Packets received</td><td>{{.PacketsReceived}}</td></tr>
<tr><td class="name">Delivery ratio</td><td>{{printf "%.1f%%" (mulp .DeliveryRatio)}}</td></tr>
</table>

<h2>Per-node link availability</h2>
<table>
<tr><th class="name">Node</th><th>Linked samples</th><th>Total samples</th><th>Availability</th><th class="name"></th></tr>
{{range .NodeAvailability}}
<tr>
<td class="name{{if .Spine}} spine{{end}}">{{.Node}}{{if .Spine}} (spine){{end}}</td>
<td>{{.Linked}}</td>
<td>{{.Samples}}</td>
<td>{{printf "%.1f%%" (mulp .Fraction)}}</td>
<td class="name"><span class="bar" style="width: {{printf "%.0f" (barw .Fraction)}}px"></span></td>
</tr>
{{end}}
</table>
</body>
</html>
`
