package testdata

// A small timeline in the on-disk YAML layout, two difficulties.
const ChartYAML = `
title: Urchin Test
charts:
  - difficulty: {name: basic, level: "3"}
    notes:
      - {type: tap, time: 1.0, lane: 0, length: 4}
      - {type: extap, time: 1.5, lane: 4, length: 4}
      - {type: flick, time: 2.0, lane: 8, length: 4}
      - {type: air, time: 2.0, lane: 8, length: 4, direction: down}
      - {type: hazard, time: 2.5, lane: 12, length: 4}
      - type: hold
        time: 3.0
        lane: 0
        length: 4
        steps:
          - {role: injection, time: 3.25, lane: 0, length: 4}
          - {role: end, time: 3.5, lane: 0, length: 4}
      - type: slide
        time: 4.0
        lane: 0
        length: 4
        steps:
          - {role: invisible, time: 4.25, lane: 2, length: 4}
          - role: step
            time: 4.5
            lane: 6
            length: 4
            curve: [[0, 0.125], [0.25, 0.25], [0.5, 0.5]]
          - {role: end, time: 5.0, lane: 12, length: 4}
      - type: airaction
        time: 5.0
        lane: 12
        length: 4
        steps:
          - {role: injection, time: 5.25, lane: 12, length: 4}
          - {role: end, time: 5.5, lane: 12, length: 4}
  - difficulty: {name: advanced, level: "7"}
    notes:
      - {type: tap, time: 1.0, lane: 0, length: 2}
`
