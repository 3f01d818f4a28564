package theme

// Stylesheet is the widget CSS. Colours come from variables so the
// data-theme attribute alone switches schemes.
const Stylesheet = `
[data-theme="dark"], .notes-graph {
  --node-color: #14b5ff;
  --link-color: rgba(20, 181, 255, 0.3);
  --text-color: #e0e0e0;
  --highlight-color: #ffb347;
  --control-bg: rgba(20, 20, 30, 0.8);
  --control-hover: rgba(20, 181, 255, 0.3);
  --tooltip-bg: rgba(10, 10, 15, 0.95);
  --tooltip-border: rgba(20, 181, 255, 0.5);
}
[data-theme="light"] {
  --node-color: #0a7bbf;
  --link-color: rgba(10, 123, 191, 0.35);
  --text-color: #1a1a2e;
  --highlight-color: #e07b00;
  --control-bg: rgba(240, 240, 245, 0.9);
  --control-hover: rgba(10, 123, 191, 0.2);
  --tooltip-bg: rgba(255, 255, 255, 0.97);
  --tooltip-border: rgba(10, 123, 191, 0.5);
}
.graph-controls {
  position: absolute;
  top: 16px;
  right: 16px;
  display: flex;
  flex-direction: column;
  gap: 8px;
  z-index: 100;
}
.graph-btn {
  width: 40px;
  height: 40px;
  border: none;
  border-radius: 8px;
  background: var(--control-bg);
  color: var(--text-color);
  font-size: 18px;
  cursor: pointer;
  display: flex;
  align-items: center;
  justify-content: center;
}
.graph-btn:hover { background: var(--control-hover); }
.graph-tooltip {
  position: absolute;
  padding: 12px 16px;
  background: var(--tooltip-bg);
  border: 1px solid var(--tooltip-border);
  border-radius: 8px;
  font-size: 14px;
  pointer-events: none;
  z-index: 200;
  max-width: 300px;
  color: var(--text-color);
}
.graph-tooltip.hidden { opacity: 0; visibility: hidden; }
.graph-tooltip .tooltip-title { font-weight: 600; margin-bottom: 4px; color: var(--node-color); }
.graph-tooltip .tooltip-tags { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 8px; }
.graph-tooltip .tooltip-tag { padding: 2px 8px; background: var(--link-color); border-radius: 12px; font-size: 11px; }
.graph-svg { width: 100%; height: 100%; display: block; }
.graph-svg .link { stroke: var(--link-color); stroke-opacity: 0.8; }
.graph-svg .node { stroke: var(--text-color); stroke-width: 1px; cursor: pointer; }
.graph-svg .node-label { fill: var(--text-color); font-size: 11px; text-anchor: middle; pointer-events: none; }
.graph-svg .highlighted { stroke: var(--highlight-color); stroke-width: 2px; }
.graph-svg .dimmed { opacity: 0.15; }
`
