package vis

// page is filled with the page title twice, then the node array and the edge array.
// Nodes are placed at their computed positions up front; edges are replayed one at
// a time so the communities can be seen forming.
const page = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>%s</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
      body { margin: 0; font-family: sans-serif; }
      #header { position: absolute; top: 8px; left: 12px; z-index: 1; }
      #graph { width: 100vw; height: 100vh; }
    </style>
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="header">%s <span id="progress"></span></div>
    <div id="graph"></div>
    <script type="text/javascript">
const nodes = new vis.DataSet(%s);
const edges = %s;

const network = new vis.Network(document.getElementById("graph"), {
  nodes: nodes,
  edges: new vis.DataSet([]),
}, {
  physics: { enabled: false },
  interaction: { hover: true, tooltipDelay: 100 },
  nodes: { shape: "dot", size: 8, font: { size: 10 } },
  edges: { color: { inherit: "both" }, scaling: { min: 1, max: 5 } },
});
network.fit();

const progress = document.getElementById("progress");
let next = 0;

function replayEdge() {
  if (next >= edges.length) {
    progress.textContent = edges.length + " edges";
    return;
  }
  network.body.data.edges.add(edges[next]);
  next++;
  progress.textContent = next + " / " + edges.length + " edges";
  setTimeout(replayEdge, 10);
}

replayEdge();
    </script>
  </body>
</html>`
